package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// NotFound renders the dedicated 404 page used for unknown routes and
// unknown post slugs alike.
func NotFound(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page error-page"><h1>Post Not Found</h1>`)
		b.WriteString(`<p>The article you&#39;re looking for doesn&#39;t exist or has been removed.</p>`)
		b.WriteString(`<p><a class="button" href="/blog">&larr; Back to Blog</a></p>`)
		b.WriteString(`</section>`)
	})
}

// ServerError renders the 500 page. Detail stays in the server log.
func ServerError(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page error-page"><h1>Something went wrong</h1>`)
		b.WriteString(`<p>An unexpected error occurred. Please try again.</p>`)
		b.WriteString(`<p><a class="button" href="/">Back to home</a></p>`)
		b.WriteString(`</section>`)
	})
}
