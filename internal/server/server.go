package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/yanews/internal/auth"
	"github.com/emilythestrangee/yanews/internal/config"
	"github.com/emilythestrangee/yanews/internal/database"
	"github.com/emilythestrangee/yanews/internal/handlers"
	"github.com/emilythestrangee/yanews/internal/middleware"
	"github.com/emilythestrangee/yanews/internal/store"
	"github.com/emilythestrangee/yanews/internal/urls"
	"github.com/emilythestrangee/yanews/internal/views"
)

type Server struct {
	cfg      *config.Config
	db       database.Service
	handler  *handlers.Handler
	sessions *auth.Sessions
	users    *store.UserStore
	log      *zap.SugaredLogger
}

// New wires the stores and handlers on top of db.
func New(cfg *config.Config, db database.Service, log *zap.SugaredLogger) (*Server, error) {
	gdb := db.GetDB()
	users := store.NewUserStore(gdb)
	sessions := auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL)

	handler, err := handlers.NewHandler(handlers.Deps{
		News:          store.NewNewsStore(gdb),
		Comments:      store.NewCommentStore(gdb),
		Users:         users,
		Sessions:      sessions,
		Logger:        log,
		SecureCookies: cfg.IsProduction(),
	})
	if err != nil {
		return nil, fmt.Errorf("init handlers: %w", err)
	}

	return &Server{
		cfg:      cfg,
		db:       db,
		handler:  handler,
		sessions: sessions,
		users:    users,
		log:      log,
	}, nil
}

// NewServer creates and configures the HTTP server
func NewServer(cfg *config.Config, db database.Service, log *zap.SugaredLogger) (*http.Server, error) {
	s, err := New(cfg, db, log)
	if err != nil {
		return nil, err
	}

	router, err := s.RegisterRoutes()
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.Recovery(s.log), middleware.RequestLogger(s.log))

	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.Session(s.sessions, s.users, s.log))

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.GET(urls.Health, s.health)

	// News routes (public reads)
	r.GET(urls.Home, s.handler.News.Home)
	r.GET(urls.DetailPattern, s.handler.News.Detail)

	// Auth routes
	r.GET(urls.Login, s.handler.User.LoginForm)
	r.POST(urls.Login, s.handler.User.Login)
	r.GET(urls.Signup, s.handler.User.SignupForm)
	r.POST(urls.Signup, s.handler.User.Signup)
	r.POST(urls.Logout, s.handler.User.Logout)

	// Protected routes (authentication required)
	protected := r.Group("")
	protected.Use(middleware.LoginRequired(urls.Login))
	{
		protected.POST(urls.DetailPattern, s.handler.News.CreateComment)

		protected.GET(urls.EditPattern, s.handler.Comment.EditForm)
		protected.POST(urls.EditPattern, s.handler.Comment.Edit)
		protected.GET(urls.DeletePattern, s.handler.Comment.DeleteForm)
		protected.POST(urls.DeletePattern, s.handler.Comment.Delete)
	}

	return r, nil
}

func (s *Server) health(c *gin.Context) {
	stats := s.db.Health(c.Request.Context())
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}
