package discourse

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/danielsimon/discourse/views"
)

// Local validation failures shown inline in the editor. These block the
// save before any store call is made.
var (
	errTitleRequired = errors.New("Title is required")
	errSlugRequired  = errors.New("Slug is required. Add a title or slug.")
)

func (a *App) adminMeta(c echo.Context, title string) views.PageMeta {
	meta := a.pageMeta(c, title+" - "+a.Config.Site.Name, "", "/admin", "website")
	return meta
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.Config.Site, a.adminMeta(c, "Admin"), false))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.Config.Site, a.adminMeta(c, "Admin"), true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// renderAdminDashboard fetches posts, comment counts, and the subscriber
// count concurrently. The join is all-or-nothing: one failed fetch shows a
// single failure banner rather than partial counts.
func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	var (
		posts                  []views.Post
		totalComments, pending int
		subscribers            int
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		posts, err = a.Store.ListAllPosts()
		return err
	})
	g.Go(func() error {
		var err error
		totalComments, pending, err = a.Store.CountComments()
		return err
	})
	g.Go(func() error {
		var err error
		subscribers, err = a.Store.CountActiveSubscribers()
		return err
	})

	meta := a.adminMeta(c, "Dashboard")
	meta.Msg = msg
	if err := g.Wait(); err != nil {
		c.Logger().Errorf("dashboard load: %v", err)
		return Render(c, views.AdminDashboard(a.Config.Site, meta, views.Stats{}, nil, true))
	}

	stats := ComputeStats(posts, totalComments, pending, subscribers)
	return Render(c, views.AdminDashboard(a.Config.Site, meta, stats, posts, false))
}

// ComputeStats derives the dashboard aggregates from raw collection
// contents.
func ComputeStats(posts []views.Post, totalComments, pendingComments, activeSubscribers int) views.Stats {
	stats := views.Stats{
		TotalPosts:       len(posts),
		TotalComments:    totalComments,
		PendingComments:  pendingComments,
		TotalSubscribers: activeSubscribers,
	}
	for _, p := range posts {
		switch p.Status {
		case views.StatusPublished:
			stats.PublishedPosts++
		case views.StatusDraft:
			stats.DraftPosts++
		}
	}
	return stats
}

func (a *App) handleAdminNew(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	categories, err := a.Store.ListCategories()
	if err != nil {
		return err
	}
	return Render(c, views.AdminEditor(a.Config.Site, a.adminMeta(c, "New Post"), views.Post{Status: views.StatusDraft}, categories, ""))
}

func (a *App) handleAdminEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	post, err := a.Store.GetPost(c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return a.renderNotFound(c)
		}
		return err
	}
	categories, err := a.Store.ListCategories()
	if err != nil {
		return err
	}
	return Render(c, views.AdminEditor(a.Config.Site, a.adminMeta(c, "Edit Post"), post, categories, ""))
}

// postForm is the raw editor submission.
type postForm struct {
	ID             string
	Title          string
	Slug           string
	Excerpt        string
	Content        string
	FeaturedImage  string
	CategoryID     string
	Tags           string
	SEOTitle       string
	SEODescription string
	Published      bool
}

func readPostForm(c echo.Context) postForm {
	return postForm{
		ID:             c.FormValue("id"),
		Title:          c.FormValue("title"),
		Slug:           c.FormValue("slug"),
		Excerpt:        c.FormValue("excerpt"),
		Content:        c.FormValue("content"),
		FeaturedImage:  c.FormValue("featured_image"),
		CategoryID:     c.FormValue("category_id"),
		Tags:           c.FormValue("tags"),
		SEOTitle:       c.FormValue("seo_title"),
		SEODescription: c.FormValue("seo_description"),
		Published:      c.FormValue("published") != "",
	}
}

// buildPost turns an editor submission into a persistable post. The slug is
// derived from the title only when the slug field was left blank, so a slug
// the admin explicitly edited is never overwritten. The publish timestamp
// is stamped once, on the draft-to-published transition.
func buildPost(f postForm, existing *views.Post, categories []views.Category, user views.User, now time.Time) (views.Post, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return views.Post{}, errTitleRequired
	}
	slug := strings.TrimSpace(f.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return views.Post{}, errSlugRequired
	}

	categoryName := ""
	for _, cat := range categories {
		if cat.ID == f.CategoryID {
			categoryName = cat.Name
			break
		}
	}

	seoTitle := strings.TrimSpace(f.SEOTitle)
	if seoTitle == "" {
		seoTitle = title
	}

	status := views.StatusDraft
	if f.Published {
		status = views.StatusPublished
	}

	nowStamp := now.UTC().Format(time.RFC3339)
	p := views.Post{
		ID:             f.ID,
		Title:          title,
		Slug:           slug,
		Excerpt:        strings.TrimSpace(f.Excerpt),
		Content:        f.Content,
		FeaturedImage:  strings.TrimSpace(f.FeaturedImage),
		CategoryID:     f.CategoryID,
		Category:       categoryName,
		Tags:           ParseTagInput(f.Tags),
		Status:         status,
		SEOTitle:       seoTitle,
		SEODescription: strings.TrimSpace(f.SEODescription),
		AuthorID:       user.ID,
		AuthorName:     user.DisplayName,
		CreatedAt:      nowStamp,
		UpdatedAt:      nowStamp,
	}
	if user.DisplayName == "" {
		p.AuthorName = user.Email
	}
	if existing != nil {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.PublishedAt = existing.PublishedAt
	} else if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if status == views.StatusPublished && p.PublishedAt == "" {
		p.PublishedAt = nowStamp
	}
	return p, nil
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	form := readPostForm(c)

	categories, err := a.Store.ListCategories()
	if err != nil {
		return err
	}

	var existing *views.Post
	if form.ID != "" {
		p, err := a.Store.GetPost(form.ID)
		if err != nil {
			if err == ErrNotFound {
				return a.renderNotFound(c)
			}
			return err
		}
		existing = &p
	}

	post, err := buildPost(form, existing, categories, a.Config.AdminUser(), time.Now())
	if err != nil {
		// Local validation failure: no store call, the draft round-trips.
		draft := draftFromForm(form, categories)
		return Render(c, views.AdminEditor(a.Config.Site, a.adminMeta(c, "Edit Post"), draft, categories, err.Error()))
	}

	// An optional featured-image upload is processed before the save. A
	// failed upload reports inline and leaves the rest of the draft intact.
	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		publicURL, uerr := a.SaveUpload(file)
		if uerr != nil {
			c.Logger().Errorf("image upload: %v", uerr)
			return Render(c, views.AdminEditor(a.Config.Site, a.adminMeta(c, "Edit Post"), post, categories, "Failed to upload image: "+uerr.Error()))
		}
		post.FeaturedImage = publicURL
	}

	if existing != nil {
		err = a.Store.UpdatePost(post)
	} else {
		err = a.Store.CreatePost(post)
	}
	if err != nil {
		if err == ErrDuplicate {
			return Render(c, views.AdminEditor(a.Config.Site, a.adminMeta(c, "Edit Post"), post, categories, "That slug is already in use by another post."))
		}
		return err
	}

	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=Post+saved.")
}

// draftFromForm rebuilds an unvalidated draft for redisplay after a
// validation failure.
func draftFromForm(f postForm, categories []views.Category) views.Post {
	status := views.StatusDraft
	if f.Published {
		status = views.StatusPublished
	}
	categoryName := ""
	for _, cat := range categories {
		if cat.ID == f.CategoryID {
			categoryName = cat.Name
			break
		}
	}
	return views.Post{
		ID:             f.ID,
		Title:          f.Title,
		Slug:           f.Slug,
		Excerpt:        f.Excerpt,
		Content:        f.Content,
		FeaturedImage:  f.FeaturedImage,
		CategoryID:     f.CategoryID,
		Category:       categoryName,
		Tags:           ParseTagInput(f.Tags),
		Status:         status,
		SEOTitle:       f.SEOTitle,
		SEODescription: f.SEODescription,
	}
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeletePost(c.Param("id")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=Post+deleted.")
}
