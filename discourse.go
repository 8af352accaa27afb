// Package discourse is a personal blogging website: a server-rendered
// content front-end (home, about, blog, categories, contact, legal pages)
// plus a password-protected admin dashboard for managing posts, backed by
// SQLite and rendered with templ components.
package discourse

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/danielsimon/discourse/views"
)

// App is the central application. It wires together the store, cache,
// handlers, middleware, and templates.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// defaultCategories seed a fresh database so the editor has something to
// file posts under.
var defaultCategories = []views.Category{
	{ID: "cat_life", Name: "Life", Slug: "life", Description: "Reflections on everyday experience."},
	{ID: "cat_growth", Name: "Growth", Slug: "growth", Description: "Notes on becoming a little better."},
	{ID: "cat_philosophy", Name: "Philosophy", Slug: "philosophy", Description: "Questions worth sitting with."},
	{ID: "cat_reflection", Name: "Reflection", Slug: "reflection", Description: "Looking back to look forward."},
}

// Start initializes the database, cache, middleware, and routes, then
// starts the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("discourse: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("discourse: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("discourse: init store: %w", err)
	}
	a.Store = store

	if err := store.SeedCategories(defaultCategories); err != nil {
		return fmt.Errorf("discourse: seed categories: %w", err)
	}

	a.Cache = NewPostCache(store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/categories/", a.handleCategories)
	e.GET("/contact/", a.handleContact)
	e.GET("/privacy/", a.handlePrivacy)
	e.GET("/terms/", a.handleTerms)

	e.POST("/newsletter/", a.handleNewsletterSignup)
	e.POST("/theme/", a.handleThemeToggle)

	// Admin area, session-gated
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/new/", a.handleAdminNew)
	e.GET("/admin/edit/:id/", a.handleAdminEdit)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/delete/:id/", a.handleAdminDelete)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
