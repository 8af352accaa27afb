package discourse

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/danielsimon/discourse/views"
)

// pageMeta assembles the per-page metadata shared by every handler: SEO
// fields plus the CSRF token, theme preference, and one-shot banner message.
func (a *App) pageMeta(c echo.Context, title, description, path, ogType string) views.PageMeta {
	return views.PageMeta{
		Title:       title,
		Description: description,
		URL:         FullURL(a.Config.Site, path),
		OGType:      ogType,
		CSRF:        CsrfToken(c),
		Theme:       Theme(c),
		Msg:         c.QueryParam("msg"),
	}
}

func (a *App) handleHome(c echo.Context) error {
	cfg := a.Config.Site
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	latest := posts
	if len(latest) > 3 {
		latest = latest[:3]
	}
	meta := a.pageMeta(c, cfg.Name+" - Thoughtful Personal Blog", cfg.Description, "/", "website")
	meta.JSONLD = []string{
		WebsiteJsonLD(cfg),
		PersonJsonLD(cfg, "Writer, thinker, and explorer of life's deeper meanings."),
	}
	return Render(c, views.Home(cfg, meta, latest))
}

func (a *App) handleBlog(c echo.Context) error {
	cfg := a.Config.Site
	category := c.QueryParam("category")
	if category == "" {
		category = "all"
	}
	search := strings.TrimSpace(c.QueryParam("search"))
	page, _ := strconv.Atoi(c.QueryParam("page"))

	posts, err := a.Cache.ListPosts(category)
	if err != nil {
		return err
	}
	matched := FilterPosts(posts, search)
	pagePosts, pg := Paginate(matched, page)

	categories, err := a.Cache.ListCategories()
	if err != nil {
		return err
	}

	filtered := search != "" || category != "all"
	meta := a.pageMeta(c, "Blog - "+cfg.Name,
		"Explore thoughtful articles and reflections on life, personal growth, and the human experience.",
		"/blog", "website")
	meta.JSONLD = []string{BlogJsonLD(cfg, matched)}
	return Render(c, views.Blog(cfg, meta, pagePosts, categories, search, category, pg, filtered))
}

func (a *App) handlePost(c echo.Context) error {
	cfg := a.Config.Site
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == ErrNotFound {
			return a.renderNotFound(c)
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	related := RelatedPosts(post, posts, 3)

	title := post.SEOTitle
	if title == "" {
		title = post.Title
	}
	description := post.SEODescription
	if description == "" {
		description = post.Excerpt
	}
	meta := a.pageMeta(c, title, description, post.Link(), "article")
	meta.Image = post.FeaturedImage
	if len(post.Tags) > 0 {
		meta.Keywords = strings.Join(post.Tags, ", ") + ", " + post.Category
	}
	meta.JSONLD = []string{ArticleJsonLD(cfg, post)}

	share := SocialShareURLs(cfg, post.Title, post.Link(), post.Excerpt)
	return Render(c, views.PostPage(cfg, meta, post, related, share))
}

func (a *App) handleCategories(c echo.Context) error {
	cfg := a.Config.Site
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	categories, err := a.Cache.ListCategories()
	if err != nil {
		return err
	}
	summaries := SummarizeCategories(categories, posts)
	meta := a.pageMeta(c, "Categories - "+cfg.Name,
		"Explore different themes and topics that shape our journey through life.",
		"/categories", "website")
	return Render(c, views.Categories(cfg, meta, summaries))
}

func (a *App) handleAbout(c echo.Context) error {
	cfg := a.Config.Site
	meta := a.pageMeta(c, "About - "+cfg.Name, cfg.Description, "/about", "website")
	meta.JSONLD = []string{PersonJsonLD(cfg, "Writer, thinker, and explorer of life's deeper meanings.")}
	return Render(c, views.About(cfg, meta))
}

func (a *App) handleContact(c echo.Context) error {
	cfg := a.Config.Site
	meta := a.pageMeta(c, "Contact - "+cfg.Name, "Questions, thoughts, or just want to say hello?", "/contact", "website")
	return Render(c, views.Contact(cfg, meta))
}

func (a *App) handlePrivacy(c echo.Context) error {
	cfg := a.Config.Site
	meta := a.pageMeta(c, "Privacy Policy - "+cfg.Name, "How this site handles your data.", "/privacy", "website")
	return Render(c, views.Privacy(cfg, meta))
}

func (a *App) handleTerms(c echo.Context) error {
	cfg := a.Config.Site
	meta := a.pageMeta(c, "Terms of Service - "+cfg.Name, "Terms for reading and reusing this site's content.", "/terms", "website")
	return Render(c, views.Terms(cfg, meta))
}

// handleNewsletterSignup records a subscriber and redirects back with a
// one-shot message. A duplicate email gets its own friendly message; any
// other store failure gets a generic one and leaves prior state intact.
func (a *App) handleNewsletterSignup(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	if email == "" {
		return redirectWithMsg(c, "Please enter your email address.")
	}

	sub := views.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Status:       views.SubscriberActive,
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	}
	switch err := a.Store.CreateSubscriber(sub); err {
	case nil:
		return redirectWithMsg(c, "You've successfully subscribed to our newsletter.")
	case ErrDuplicate:
		return redirectWithMsg(c, "You're already subscribed to our newsletter.")
	default:
		c.Logger().Errorf("newsletter signup: %v", err)
		return redirectWithMsg(c, "Something went wrong. Please try again.")
	}
}

// handleThemeToggle flips the persisted dark-mode cookie and returns to the
// originating page.
func (a *App) handleThemeToggle(c echo.Context) error {
	next := "dark"
	if Theme(c) == "dark" {
		next = "light"
	}
	c.SetCookie(&http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	})
	return c.Redirect(http.StatusSeeOther, refererPath(c))
}

// refererPath returns the internal path the request came from, or "/" when
// the referer is absent or external.
func refererPath(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return "/"
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}

func redirectWithMsg(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, refererPath(c)+"?msg="+url.QueryEscape(msg))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.Site.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	cfg := a.Config.Site
	meta := a.pageMeta(c, "Not Found - "+cfg.Name, "", c.Request().URL.Path, "website")
	return RenderStatus(c, http.StatusNotFound, views.NotFound(cfg, meta))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	cfg := a.Config.Site
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		meta := a.pageMeta(c, "Error - "+cfg.Name, "", c.Request().URL.Path, "website")
		_ = RenderStatus(c, code, views.ServerError(cfg, meta))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
