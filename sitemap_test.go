package discourse

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielsimon/discourse/views"
)

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "Fish &amp; Chips", EscapeXML("Fish & Chips"))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", EscapeXML("<b>bold</b>"))
	assert.Equal(t, "&quot;quoted&quot;", EscapeXML(`"quoted"`))
	assert.Equal(t, "it&apos;s", EscapeXML("it's"))
	assert.Equal(t, "plain", EscapeXML("plain"))
}

func TestGenerateSitemap(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []views.Post{
		{
			Title:         "Daniel's Journey & Beyond",
			Slug:          "daniels-journey",
			Excerpt:       "Where it <started>",
			FeaturedImage: "https://www.example.com/public/blog-images/journey.jpg",
			UpdatedAt:     "2024-02-20T09:00:00Z",
		},
		{Title: "Plain Post", Slug: "plain-post"},
	}

	out := GenerateSitemap(testSite, posts, now)

	for _, path := range []string{"/", "/about", "/blog", "/categories", "/contact", "/privacy", "/terms"} {
		assert.Contains(t, out, "<loc>https://www.example.com"+path+"</loc>")
	}
	assert.Contains(t, out, "<loc>https://www.example.com/blog/daniels-journey</loc>")
	assert.Contains(t, out, "<changefreq>daily</changefreq>")
	assert.Contains(t, out, "<priority>1.0</priority>")
	assert.Contains(t, out, "<lastmod>2024-03-01T12:00:00Z</lastmod>")

	// Apostrophes use the apos entity, not a numeric reference.
	assert.Contains(t, out, "<image:title>Daniel&apos;s Journey &amp; Beyond</image:title>")
	assert.Contains(t, out, "<image:caption>Where it &lt;started&gt;</image:caption>")
	assert.NotContains(t, out, "&#39;")

	// A post without a featured image carries no image block for it.
	assert.Contains(t, out, "<loc>https://www.example.com/blog/plain-post</loc>")

	// Escaping leaves the document well-formed.
	type urlEntry struct {
		Loc string `xml:"loc"`
	}
	var parsed struct {
		URLs []urlEntry `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal([]byte(out), &parsed))
	assert.Len(t, parsed.URLs, 9)
}
