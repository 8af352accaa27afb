package discourse

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/danielsimon/discourse/views"
)

// Slugify derives a URL-safe slug from a title: lowercase, characters
// outside [a-z0-9 -] stripped, whitespace runs collapsed to a single
// hyphen, hyphen runs collapsed, leading/trailing hyphens trimmed.
// The result is idempotent under re-slugification.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '-':
			b.WriteRune(r)
		}
	}
	s := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// ParseTagInput turns the editor's comma-separated tag field into a clean
// tag list: trimmed, empties dropped, duplicates removed, order preserved.
func ParseTagInput(input string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, t := range strings.Split(input, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// FullURL returns the absolute URL for a site-relative path.
func FullURL(cfg views.SiteConfig, path string) string {
	return strings.TrimSuffix(cfg.URL, "/") + path
}

// DisplayURL returns a clean URL for display: scheme, leading www, and any
// trailing slash removed.
func DisplayURL(rawURL string) string {
	s := rawURL
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}

// SocialShareURLs builds sharing links for a post at the given
// site-relative path.
func SocialShareURLs(cfg views.SiteConfig, title, path, description string) views.ShareURLs {
	full := FullURL(cfg, path)
	encodedURL := url.QueryEscape(full)
	encodedTitle := url.QueryEscape(title)
	encodedDescription := url.QueryEscape(description)
	return views.ShareURLs{
		Twitter:  "https://twitter.com/intent/tweet?url=" + encodedURL + "&text=" + encodedTitle,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + encodedURL,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + encodedURL,
		Reddit:   "https://reddit.com/submit?url=" + encodedURL + "&title=" + encodedTitle,
		Email:    "mailto:?subject=" + encodedTitle + "&body=" + encodedDescription + "%0A%0A" + encodedURL,
		Copy:     full,
	}
}

func marshalJSONLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func personRef(cfg views.SiteConfig) map[string]string {
	return map[string]string{
		"@type": "Person",
		"name":  cfg.Author,
		"email": cfg.AuthorEmail,
		"url":   FullURL(cfg, "/about"),
	}
}

func publisherRef(cfg views.SiteConfig) map[string]any {
	return map[string]any{
		"@type": "Organization",
		"name":  cfg.Name,
		"url":   cfg.URL,
		"logo": map[string]any{
			"@type": "ImageObject",
			"url":   FullURL(cfg, "/logo.png"),
		},
	}
}

// WebsiteJsonLD returns the schema.org WebSite block, including the site
// search action.
func WebsiteJsonLD(cfg views.SiteConfig) string {
	return marshalJSONLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"description": cfg.Description,
		"url":         cfg.URL,
		"author":      personRef(cfg),
		"publisher":   publisherRef(cfg),
		"potentialAction": map[string]any{
			"@type": "SearchAction",
			"target": map[string]string{
				"@type":       "EntryPoint",
				"urlTemplate": cfg.URL + "/blog?search={search_term_string}",
			},
			"query-input": "required name=search_term_string",
		},
	})
}

// BlogJsonLD returns the schema.org Blog block for the article index.
func BlogJsonLD(cfg views.SiteConfig, posts []views.Post) string {
	items := make([]map[string]any, 0, len(posts))
	for _, p := range posts {
		items = append(items, map[string]any{
			"@type":         "BlogPosting",
			"headline":      p.Title,
			"description":   p.Excerpt,
			"url":           FullURL(cfg, p.Link()),
			"datePublished": p.PublishedAt,
			"dateModified":  p.UpdatedAt,
			"image":         p.FeaturedImage,
			"author":        map[string]string{"@type": "Person", "name": cfg.Author},
		})
	}
	return marshalJSONLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Blog",
		"name":        cfg.Name + " Blog",
		"description": cfg.Description,
		"url":         FullURL(cfg, "/blog"),
		"author":      personRef(cfg),
		"publisher":   publisherRef(cfg),
		"blogPost":    items,
	})
}

// ArticleJsonLD returns the schema.org BlogPosting block for a post page.
func ArticleJsonLD(cfg views.SiteConfig, p views.Post) string {
	author := cfg.Author
	if p.AuthorName != "" {
		author = p.AuthorName
	}
	postURL := FullURL(cfg, p.Link())
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   p.Excerpt,
		"url":           postURL,
		"datePublished": p.PublishedAt,
		"dateModified":  p.LastModified(),
		"author": map[string]string{
			"@type": "Person",
			"name":  author,
			"url":   FullURL(cfg, "/about"),
		},
		"publisher": publisherRef(cfg),
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if p.FeaturedImage != "" {
		data["image"] = map[string]any{
			"@type": "ImageObject",
			"url":   p.FeaturedImage,
		}
	}
	if len(p.Tags) > 0 {
		data["keywords"] = strings.Join(p.Tags, ", ")
	}
	return marshalJSONLD(data)
}

// PersonJsonLD returns the schema.org Person block used on the home page.
func PersonJsonLD(cfg views.SiteConfig, bio string) string {
	return marshalJSONLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Person",
		"name":        cfg.Author,
		"email":       cfg.AuthorEmail,
		"description": bio,
		"url":         FullURL(cfg, "/about"),
	})
}
