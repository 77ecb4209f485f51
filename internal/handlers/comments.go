package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/yanews/internal/middleware"
	"github.com/emilythestrangee/yanews/internal/models"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/urls"
	"github.com/emilythestrangee/yanews/internal/views"
)

// CommentHandler edits and deletes comments. Every lookup is scoped to the
// current user, so other people's comments answer 404.
type CommentHandler struct {
	base
	comments CommentsRepo
}

func (h *CommentHandler) EditForm(c *gin.Context) {
	comment, ok := h.loadOwned(c)
	if !ok {
		return
	}

	form := views.NewForm(map[string]string{"text": comment.Text})
	h.render(c, http.StatusOK, views.Edit, &views.Data{Comment: comment, Form: form})
}

func (h *CommentHandler) Edit(c *gin.Context) {
	comment, ok := h.loadOwned(c)
	if !ok {
		return
	}

	in := commentForm{Text: strings.TrimSpace(c.PostForm("text"))}
	form := views.NewForm(map[string]string{"text": in.Text})
	validate(&in, form)
	if !form.Valid() {
		h.render(c, http.StatusOK, views.Edit, &views.Data{Comment: comment, Form: form})
		return
	}

	if err := h.comments.UpdateText(c.Request.Context(), comment, in.Text); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Infow("comment updated", "comment_id", comment.ID, "author_id", comment.AuthorID)
	c.Redirect(http.StatusFound, urls.Comments(comment.NewsID))
}

func (h *CommentHandler) DeleteForm(c *gin.Context) {
	comment, ok := h.loadOwned(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, views.Delete, &views.Data{Comment: comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	comment, ok := h.loadOwned(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), comment); err != nil {
		h.fail(c, err)
		return
	}

	h.log.Infow("comment deleted", "comment_id", comment.ID, "author_id", comment.AuthorID)
	c.Redirect(http.StatusFound, urls.Comments(comment.NewsID))
}

func (h *CommentHandler) loadOwned(c *gin.Context) (*models.Comment, bool) {
	id, ok := parseID(c)
	if !ok {
		h.notFound(c)
		return nil, false
	}

	comment, err := h.comments.GetOwned(c.Request.Context(), id, middleware.CurrentUser(c).ID)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return comment, true
}

func (h *CommentHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		h.notFound(c)
		return
	}
	h.serverError(c, err)
}
