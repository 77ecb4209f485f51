package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emilythestrangee/yanews/internal/models"
)

type CommentStore struct {
	db *gorm.DB
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListByNews returns the comments of a news item, oldest first.
func (s *CommentStore) ListByNews(ctx context.Context, newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("news_id = ?", newsID).
		Order("created asc").
		Order("id asc").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// GetOwned looks a comment up only among those written by authorID, so a
// foreign comment is indistinguishable from a missing one.
func (s *CommentStore) GetOwned(ctx context.Context, id, authorID uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&comment).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &comment, nil
}

func (s *CommentStore) UpdateText(ctx context.Context, comment *models.Comment, text string) error {
	res := s.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND author_id = ?", comment.ID, comment.AuthorID).
		Update("text", text)
	if res.Error != nil {
		return fmt.Errorf("update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	comment.Text = text
	return nil
}

func (s *CommentStore) Delete(ctx context.Context, comment *models.Comment) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", comment.ID, comment.AuthorID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CommentStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Comment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
