package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// PostPage renders a single published article: header, featured image,
// converted body blocks, tags, share links, and related posts from the
// same category.
func PostPage(cfg SiteConfig, meta PageMeta, post Post, related []Post, share ShareURLs) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<article class="post">`)
		b.WriteString(`<p class="back"><a href="/blog">&larr; Back to Blog</a></p>`)

		b.WriteString(`<header class="post-header">`)
		if post.Category != "" {
			b.WriteString(`<a class="category-badge" href="/blog?category=` + QueryEscape(post.Category) + `">` + esc(post.Category) + `</a>`)
		}
		b.WriteString(`<h1>` + esc(post.Title) + `</h1>`)
		b.WriteString(`<div class="post-meta">`)
		if post.AuthorName != "" {
			b.WriteString(`<span class="author">` + esc(post.AuthorName) + `</span>`)
		}
		if post.PublishedAt != "" {
			b.WriteString(`<time datetime="` + esc(post.PublishedAt) + `">` + esc(FormatDate(post.PublishedAt)) + `</time>`)
		}
		b.WriteString(`</div></header>`)

		if post.FeaturedImage != "" {
			b.WriteString(`<img class="featured" src="` + esc(post.FeaturedImage) + `" alt="` + esc(post.Title) + `">`)
		}

		b.WriteString(`<div class="post-body">`)
		renderBlocks(b, SplitBlocks(post.Content))
		b.WriteString(`</div>`)

		if len(post.Tags) > 0 {
			b.WriteString(`<ul class="tag-list">`)
			for _, t := range post.Tags {
				b.WriteString(`<li>` + esc(t) + `</li>`)
			}
			b.WriteString(`</ul>`)
		}

		writeShareLinks(b, share)
		b.WriteString(`</article>`)

		if len(related) > 0 {
			b.WriteString(`<section class="related"><h2>Related Articles</h2><div class="post-grid">`)
			for _, p := range related {
				writePostCard(b, p)
			}
			b.WriteString(`</div></section>`)
		}
	})
}

func writeShareLinks(b *bytes.Buffer, share ShareURLs) {
	b.WriteString(`<div class="share"><span>Share:</span>`)
	b.WriteString(`<a href="` + esc(share.Twitter) + `" rel="noopener" target="_blank">Twitter</a>`)
	b.WriteString(`<a href="` + esc(share.Facebook) + `" rel="noopener" target="_blank">Facebook</a>`)
	b.WriteString(`<a href="` + esc(share.LinkedIn) + `" rel="noopener" target="_blank">LinkedIn</a>`)
	b.WriteString(`<a href="` + esc(share.Reddit) + `" rel="noopener" target="_blank">Reddit</a>`)
	b.WriteString(`<a href="` + esc(share.Email) + `">Email</a>`)
	b.WriteString(`</div>`)
}

// RenderContent exposes the body conversion for feeds that embed HTML.
func RenderContent(content string) string {
	var b bytes.Buffer
	renderBlocks(&b, SplitBlocks(content))
	return b.String()
}
