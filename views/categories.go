package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// Categories renders the category overview: one card per category with its
// published post count and up to three recent posts.
func Categories(cfg SiteConfig, meta PageMeta, summaries []CategorySummary) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="categories"><h1>Categories</h1>`)
		b.WriteString(`<p class="lead">Explore different themes and topics that shape our journey through life.</p>`)

		if len(summaries) == 0 {
			b.WriteString(`<p class="empty">No categories yet.</p></section>`)
			return
		}

		b.WriteString(`<div class="category-grid">`)
		for _, s := range summaries {
			b.WriteString(`<article class="category-card">`)
			b.WriteString(`<h2><a href="/blog?category=` + QueryEscape(s.Name) + `">` + esc(s.Name) + `</a></h2>`)
			b.WriteString(`<span class="count">` + strconv.Itoa(s.PostCount) + ` article`)
			if s.PostCount != 1 {
				b.WriteString(`s`)
			}
			b.WriteString(`</span>`)
			if s.Description != "" {
				b.WriteString(`<p>` + esc(s.Description) + `</p>`)
			}
			if len(s.Recent) > 0 {
				b.WriteString(`<ul class="recent-posts">`)
				for _, p := range s.Recent {
					b.WriteString(`<li><a href="` + esc(p.Link()) + `">` + esc(p.Title) + `</a></li>`)
				}
				b.WriteString(`</ul>`)
			}
			b.WriteString(`</article>`)
		}
		b.WriteString(`</div></section>`)
	})
}
