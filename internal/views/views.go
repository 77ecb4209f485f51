// Package views holds the HTML templates and the data passed to them.
package views

import (
	"embed"
	"html/template"
	"time"

	"github.com/emilythestrangee/yanews/internal/models"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/urls"
)

const (
	Home      = "news/home.html"
	Detail    = "news/detail.html"
	Edit      = "news/edit.html"
	Delete    = "news/delete.html"
	Login     = "users/login.html"
	Signup    = "users/signup.html"
	LoggedOut = "users/logged_out.html"
)

//go:embed templates/*.html
var files embed.FS

// Data is the template context shared by every page.
type Data struct {
	Title   string
	User    *models.User
	Page    *store.NewsPage
	News    *models.News
	Comment *models.Comment
	Form    *Form
	Next    string
}

var functions = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02.01.2006")
	},
	"datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02.01.2006 15:04")
	},
	"detailURL":   urls.Detail,
	"commentsURL": urls.Comments,
	"editURL":     urls.Edit,
	"deleteURL":   urls.Delete,
	"pageURL":     urls.Page,
	"homeURL":     func() string { return urls.Home },
	"loginURL":    func() string { return urls.Login },
	"logoutURL":   func() string { return urls.Logout },
	"signupURL":   func() string { return urls.Signup },
}

// Templates parses every embedded template into one set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(functions).ParseFS(files, "templates/*.html")
}
