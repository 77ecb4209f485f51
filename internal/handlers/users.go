package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/yanews/internal/auth"
	"github.com/emilythestrangee/yanews/internal/middleware"
	"github.com/emilythestrangee/yanews/internal/models"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/urls"
	"github.com/emilythestrangee/yanews/internal/views"
)

type UserHandler struct {
	base
	users    UsersRepo
	sessions *auth.Sessions
	secure   bool
}

func (h *UserHandler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, views.Login, &views.Data{
		Title: "Вход",
		Form:  views.NewForm(nil),
		Next:  c.Query("next"),
	})
}

// Login checks the credentials, starts a session and redirects to a safe
// "next" path or the home page.
func (h *UserHandler) Login(c *gin.Context) {
	in := loginForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
	}
	next := c.PostForm("next")
	form := views.NewForm(map[string]string{"username": in.Username})
	data := &views.Data{Title: "Вход", Form: form, Next: next}

	validate(&in, form)
	if !form.Valid() {
		h.render(c, http.StatusOK, views.Login, data)
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), in.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.serverError(c, err)
		return
	}
	if user == nil || auth.CheckPassword(user.Password, in.Password) != nil {
		h.log.Infow("login failed", "username", in.Username)
		form.AddError(views.NonField, msgBadLogin)
		h.render(c, http.StatusOK, views.Login, data)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.serverError(c, err)
		return
	}

	h.log.Infow("login successful", "user_id", user.ID)
	c.Redirect(http.StatusFound, safeNext(next))
}

func (h *UserHandler) SignupForm(c *gin.Context) {
	h.render(c, http.StatusOK, views.Signup, &views.Data{Title: "Регистрация", Form: views.NewForm(nil)})
}

// Signup creates the account and logs the new user in.
func (h *UserHandler) Signup(c *gin.Context) {
	in := signupForm{
		Username:  strings.TrimSpace(c.PostForm("username")),
		Password1: c.PostForm("password1"),
		Password2: c.PostForm("password2"),
	}
	form := views.NewForm(map[string]string{"username": in.Username})
	data := &views.Data{Title: "Регистрация", Form: form}

	validate(&in, form)
	if form.Valid() {
		if err := auth.ValidatePassword(in.Password1); err != nil {
			form.AddError("password2", passwordMessage(err))
		}
	}
	if !form.Valid() {
		h.render(c, http.StatusOK, views.Signup, data)
		return
	}

	hash, err := auth.HashPassword(in.Password1)
	if err != nil {
		h.serverError(c, err)
		return
	}

	user := &models.User{Username: in.Username, Password: hash}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			form.AddError("username", msgUsernameTaken)
			h.render(c, http.StatusOK, views.Signup, data)
			return
		}
		h.serverError(c, err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.serverError(c, err)
		return
	}

	h.log.Infow("user registered", "user_id", user.ID, "username", user.Username)
	c.Redirect(http.StatusFound, urls.Home)
}

// Logout only accepts POST; the router answers other methods with 405.
func (h *UserHandler) Logout(c *gin.Context) {
	if u := middleware.CurrentUser(c); u != nil {
		h.log.Infow("logout", "user_id", u.ID)
	}
	middleware.ClearSessionCookie(c)
	middleware.SetCurrentUser(c, nil)
	h.render(c, http.StatusOK, views.LoggedOut, &views.Data{Title: "Выход"})
}

func (h *UserHandler) startSession(c *gin.Context, u *models.User) error {
	token, err := h.sessions.Issue(u)
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, token, int(h.sessions.TTL().Seconds()), h.secure)
	middleware.SetCurrentUser(c, u)
	return nil
}

// safeNext accepts only local absolute paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return urls.Home
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return urls.Home
	}
	return next
}

func passwordMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "Введённый пароль слишком короткий. Он должен содержать как минимум 8 символов."
	case errors.Is(err, auth.ErrPasswordNumeric):
		return "Введённый пароль состоит только из цифр."
	default:
		return msgInvalidForm
	}
}
