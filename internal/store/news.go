package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/yanews/internal/models"
)

// NewsPerPage is the size of a home page listing.
const NewsPerPage = 10

// NewsPage is one page of the date-descending news listing.
type NewsPage struct {
	Items    []models.News
	Number   int
	NumPages int
	Total    int64
}

func (p *NewsPage) HasPrevious() bool { return p.Number > 1 }
func (p *NewsPage) HasNext() bool     { return p.Number < p.NumPages }
func (p *NewsPage) PreviousNumber() int {
	return p.Number - 1
}
func (p *NewsPage) NextNumber() int {
	return p.Number + 1
}

type NewsStore struct {
	db *gorm.DB
}

func NewNewsStore(db *gorm.DB) *NewsStore {
	return &NewsStore{db: db}
}

func (s *NewsStore) Create(ctx context.Context, news *models.News) error {
	if news.Date.IsZero() {
		news.Date = models.Today(s.db.NowFunc())
	}
	if err := s.db.WithContext(ctx).Create(news).Error; err != nil {
		return fmt.Errorf("create news: %w", err)
	}
	return nil
}

// Page returns page number page (1-based) of size items, newest date first.
// Out of range pages are clamped to the nearest existing page.
func (s *NewsStore) Page(ctx context.Context, page, size int) (*NewsPage, error) {
	if size <= 0 {
		size = NewsPerPage
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count news: %w", err)
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages == 0 {
		numPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	items := make([]models.News, 0, size)
	err := s.db.WithContext(ctx).
		Order("date desc").
		Order("id desc").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}

	return &NewsPage{Items: items, Number: page, NumPages: numPages, Total: total}, nil
}

// Get loads a news item with its comments, oldest comment first.
func (s *NewsStore) Get(ctx context.Context, id uint) (*models.News, error) {
	var news models.News
	err := s.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created asc").Order("id asc")
		}).
		Preload("Comments.Author").
		First(&news, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &news, nil
}
