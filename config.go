package discourse

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/danielsimon/discourse/views"
)

// Config holds everything the server needs: the public site settings passed
// to templates plus server-side secrets and paths.
type Config struct {
	Site views.SiteConfig

	Addr         string // listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/blog.db")
	StaticDir    string // user static assets and uploads (default "public")

	AdminPassword string // required: admin login password
	SessionSecret string // required: session encryption secret
	CookieSecure  bool   // set true behind HTTPS

	PostCacheTTL time.Duration // published-post cache TTL (default 5min)
}

// defaultNav mirrors the site's header navigation.
var defaultNav = []views.NavItem{
	{Name: "Home", Href: "/"},
	{Name: "About", Href: "/about"},
	{Name: "Blog", Href: "/blog"},
	{Name: "Categories", Href: "/categories"},
	{Name: "Contact", Href: "/contact"},
}

func (c *Config) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	c.Site.URL = strings.TrimSuffix(c.Site.URL, "/")
	if c.Site.Nav == nil {
		c.Site.Nav = defaultNav
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// AdminUser is the authenticated admin identity stamped onto saved posts.
func (c Config) AdminUser() views.User {
	return views.User{
		ID:          "admin",
		Email:       c.Site.AuthorEmail,
		DisplayName: c.Site.Author,
	}
}

// ConfigFromEnv assembles a Config from environment variables.
func ConfigFromEnv() Config {
	return Config{
		Site: views.SiteConfig{
			Name:        EnvOr("SITE_NAME", "Daniel's Discourse"),
			URL:         EnvOr("SITE_URL", "http://localhost:3000"),
			Description: os.Getenv("SITE_DESCRIPTION"),
			Author:      os.Getenv("SITE_AUTHOR"),
			AuthorEmail: os.Getenv("SITE_AUTHOR_EMAIL"),
			Twitter:     os.Getenv("SITE_TWITTER"),
			Keywords:    os.Getenv("SITE_KEYWORDS"),
		},
		Addr:          EnvOr("ADDR", ":3000"),
		DatabasePath:  EnvOr("DATABASE_PATH", "data/blog.db"),
		StaticDir:     EnvOr("STATIC_DIR", "public"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("discourse: required environment variable %s is not set", key)
	}
	return v
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
