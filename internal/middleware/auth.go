package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/yanews/internal/auth"
	"github.com/emilythestrangee/yanews/internal/models"
)

const userKey = "user"

type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Session resolves the user behind the session cookie and stores it on the
// context. Invalid, expired or orphaned sessions leave the request anonymous
// and drop the cookie.
func Session(sessions *auth.Sessions, users UserLookup, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(auth.CookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(raw)
		if err != nil {
			log.Debugw("dropping session cookie", "error", err)
			ClearSessionCookie(c)
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Debugw("session user lookup failed", "user_id", claims.UserID, "error", err)
			ClearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// SetCurrentUser replaces the request's user, e.g. right after login or logout.
func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(userKey, u)
}

// LoginRequired redirects anonymous requests to loginURL, passing the
// original URL in the next parameter.
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginRedirectURL(loginURL, c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginRedirectURL builds "{loginURL}?next={next}" keeping slashes readable.
func LoginRedirectURL(loginURL, next string) string {
	return loginURL + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
}
