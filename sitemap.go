package discourse

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/danielsimon/discourse/views"
)

// xmlEntities is the five-character map required for well-formed output.
var xmlEntities = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes the characters < > & " ' as XML entities.
func EscapeXML(s string) string {
	return xmlEntities.Replace(s)
}

// staticPage carries the fixed changefreq/priority assigned to each static
// route in the sitemap.
type staticPage struct {
	path       string
	changefreq string
	priority   string
}

var sitemapStaticPages = []staticPage{
	{"/", "daily", "1.0"},
	{"/about", "monthly", "0.8"},
	{"/blog", "daily", "0.9"},
	{"/categories", "weekly", "0.7"},
	{"/contact", "monthly", "0.6"},
	{"/privacy", "yearly", "0.3"},
	{"/terms", "yearly", "0.3"},
}

// GenerateSitemap builds the sitemap XML document: the static pages plus
// one entry per published post, with an image block when the post has a
// featured image. Every interpolated value is entity-escaped, so the
// output is well-formed regardless of post titles.
func GenerateSitemap(cfg views.SiteConfig, posts []views.Post, now time.Time) string {
	base := strings.TrimSuffix(cfg.URL, "/")
	nowStamp := now.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"` + "\n")
	b.WriteString(`        xmlns:image="http://www.google.com/schemas/sitemap-image/1.1">` + "\n")

	for _, p := range sitemapStaticPages {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + EscapeXML(base+p.path) + "</loc>\n")
		b.WriteString("    <lastmod>" + nowStamp + "</lastmod>\n")
		b.WriteString("    <changefreq>" + p.changefreq + "</changefreq>\n")
		b.WriteString("    <priority>" + p.priority + "</priority>\n")
		b.WriteString("  </url>\n")
	}

	for _, post := range posts {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + EscapeXML(base+"/blog/"+post.Slug) + "</loc>\n")
		if lastmod := post.LastModified(); lastmod != "" {
			b.WriteString("    <lastmod>" + EscapeXML(lastmod) + "</lastmod>\n")
		}
		b.WriteString("    <changefreq>monthly</changefreq>\n")
		b.WriteString("    <priority>0.8</priority>\n")
		if post.FeaturedImage != "" {
			b.WriteString("    <image:image>\n")
			b.WriteString("      <image:loc>" + EscapeXML(post.FeaturedImage) + "</image:loc>\n")
			b.WriteString("      <image:title>" + EscapeXML(post.Title) + "</image:title>\n")
			if post.Excerpt != "" {
				b.WriteString("      <image:caption>" + EscapeXML(post.Excerpt) + "</image:caption>\n")
			}
			b.WriteString("    </image:image>\n")
		}
		b.WriteString("  </url>\n")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	return c.String(http.StatusOK, GenerateSitemap(a.Config.Site, posts, time.Now()))
}
