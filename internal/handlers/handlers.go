package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/yanews/internal/auth"
	"github.com/emilythestrangee/yanews/internal/middleware"
	"github.com/emilythestrangee/yanews/internal/models"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/views"
)

type NewsRepo interface {
	Page(ctx context.Context, page, size int) (*store.NewsPage, error)
	Get(ctx context.Context, id uint) (*models.News, error)
}

type CommentsRepo interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetOwned(ctx context.Context, id, authorID uint) (*models.Comment, error)
	UpdateText(ctx context.Context, comment *models.Comment, text string) error
	Delete(ctx context.Context, comment *models.Comment) error
}

type UsersRepo interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Deps is everything the handlers need from the outside.
type Deps struct {
	News          NewsRepo
	Comments      CommentsRepo
	Users         UsersRepo
	Sessions      *auth.Sessions
	Logger        *zap.SugaredLogger
	SecureCookies bool
}

// Handler combines all handler types
type Handler struct {
	News    *NewsHandler
	Comment *CommentHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(d Deps) (*Handler, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	b := base{log: d.Logger}
	return &Handler{
		News:    &NewsHandler{base: b, news: d.News, comments: d.Comments},
		Comment: &CommentHandler{base: b, comments: d.Comments},
		User: &UserHandler{
			base:     b,
			users:    d.Users,
			sessions: d.Sessions,
			secure:   d.SecureCookies,
		},
	}, nil
}

type base struct {
	log *zap.SugaredLogger
}

// render fills in the current user and writes the named template.
func (b base) render(c *gin.Context, status int, name string, data *views.Data) {
	if data == nil {
		data = &views.Data{}
	}
	if data.User == nil {
		data.User = middleware.CurrentUser(c)
	}
	c.HTML(status, name, data)
}

func (b base) notFound(c *gin.Context) {
	c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	c.Abort()
}

func (b base) serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	b.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	c.Abort()
}

// parseID reads the positive integer route parameter "id".
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
