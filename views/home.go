package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// Home renders the landing page: hero, latest articles, and the shared
// newsletter footer.
func Home(cfg SiteConfig, meta PageMeta, latest []Post) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero"><h1>` + esc(cfg.Name) + `</h1>`)
		if cfg.Description != "" {
			b.WriteString(`<p class="hero-lead">` + esc(cfg.Description) + `</p>`)
		}
		b.WriteString(`<a class="button" href="/blog">Read the blog</a></section>`)

		b.WriteString(`<section class="latest"><h2>Latest Articles</h2>`)
		if len(latest) == 0 {
			b.WriteString(`<p class="empty">No articles have been published yet.</p>`)
		} else {
			b.WriteString(`<div class="post-grid">`)
			for _, p := range latest {
				writePostCard(b, p)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`<p class="more"><a href="/blog">View all articles &rarr;</a></p>`)
		b.WriteString(`</section>`)
	})
}

// writePostCard renders the shared article card used on the home, blog,
// and categories pages.
func writePostCard(b *bytes.Buffer, p Post) {
	b.WriteString(`<article class="post-card">`)
	if p.FeaturedImage != "" {
		b.WriteString(`<a href="` + esc(p.Link()) + `"><img src="` + esc(p.FeaturedImage) + `" alt="` + esc(p.Title) + `"></a>`)
	}
	b.WriteString(`<div class="post-card-body">`)
	if p.PublishedAt != "" {
		b.WriteString(`<time datetime="` + esc(p.PublishedAt) + `">` + esc(FormatDate(p.PublishedAt)) + `</time>`)
	}
	b.WriteString(`<h3><a href="` + esc(p.Link()) + `">` + esc(p.Title) + `</a></h3>`)
	if p.Category != "" {
		b.WriteString(`<a class="category-badge" href="/blog?category=` + QueryEscape(p.Category) + `">` + esc(p.Category) + `</a>`)
	}
	if p.Excerpt != "" {
		b.WriteString(`<p class="excerpt">` + esc(p.Excerpt) + `</p>`)
	}
	if len(p.Tags) > 0 {
		b.WriteString(`<ul class="tag-list">`)
		for i, t := range p.Tags {
			if i == 3 {
				break
			}
			b.WriteString(`<li>` + esc(t) + `</li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`<a class="read-more" href="` + esc(p.Link()) + `">Read more &rarr;</a>`)
	b.WriteString(`</div></article>`)
}
