package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/yanews/internal/middleware"
	"github.com/emilythestrangee/yanews/internal/models"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/urls"
	"github.com/emilythestrangee/yanews/internal/views"
)

type NewsHandler struct {
	base
	news     NewsRepo
	comments CommentsRepo
}

// Home lists the news, ten per page, newest first.
func (h *NewsHandler) Home(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	p, err := h.news.Page(c.Request.Context(), page, store.NewsPerPage)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, views.Home, &views.Data{Page: p})
}

// Detail shows a news item with its comments. Authenticated users also get
// the comment form.
func (h *NewsHandler) Detail(c *gin.Context) {
	news, ok := h.loadNews(c)
	if !ok {
		return
	}

	data := &views.Data{Title: news.Title, News: news}
	if middleware.CurrentUser(c) != nil {
		data.Form = views.NewForm(nil)
	}
	h.render(c, http.StatusOK, views.Detail, data)
}

// CreateComment stores a comment from the current user. Rejected text
// re-renders the page with the form errors and stores nothing.
func (h *NewsHandler) CreateComment(c *gin.Context) {
	news, ok := h.loadNews(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	in := commentForm{Text: strings.TrimSpace(c.PostForm("text"))}
	form := views.NewForm(map[string]string{"text": in.Text})
	validate(&in, form)
	if !form.Valid() {
		h.render(c, http.StatusOK, views.Detail, &views.Data{Title: news.Title, News: news, Form: form})
		return
	}

	comment := &models.Comment{NewsID: news.ID, AuthorID: user.ID, Text: in.Text}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		h.serverError(c, err)
		return
	}

	h.log.Infow("comment created", "comment_id", comment.ID, "news_id", news.ID, "author_id", user.ID)
	c.Redirect(http.StatusFound, urls.Comments(news.ID))
}

func (h *NewsHandler) loadNews(c *gin.Context) (*models.News, bool) {
	id, ok := parseID(c)
	if !ok {
		h.notFound(c)
		return nil, false
	}

	news, err := h.news.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.notFound(c)
		} else {
			h.serverError(c, err)
		}
		return nil, false
	}
	return news, true
}
