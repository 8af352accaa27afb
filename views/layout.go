package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// page wraps a body writer in the shared document shell: head metadata,
// header navigation, flash banner, and the footer with the newsletter form.
func page(cfg SiteConfig, meta PageMeta, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeHead(&b, cfg, meta)
		writeHeader(&b, cfg, meta)
		if meta.Msg != "" {
			b.WriteString(`<div class="banner" role="status">`)
			b.WriteString(esc(meta.Msg))
			b.WriteString(`</div>`)
		}
		b.WriteString(`<main class="site-main">`)
		body(&b)
		b.WriteString(`</main>`)
		writeFooter(&b, cfg, meta)
		b.WriteString(`</body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

// bare renders a body without header or footer, for admin and error pages.
func bare(cfg SiteConfig, meta PageMeta, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeHead(&b, cfg, meta)
		b.WriteString(`<main class="site-main">`)
		body(&b)
		b.WriteString(`</main></body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeHead(b *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	theme := ""
	if meta.Theme == "dark" {
		theme = ` class="dark"`
	}
	b.WriteString(`<!DOCTYPE html><html lang="en"` + theme + `><head><meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	b.WriteString(`<title>` + esc(meta.Title) + `</title>`)
	if meta.Description != "" {
		b.WriteString(`<meta name="description" content="` + esc(meta.Description) + `">`)
	}
	keywords := meta.Keywords
	if keywords == "" {
		keywords = cfg.Keywords
	}
	if keywords != "" {
		b.WriteString(`<meta name="keywords" content="` + esc(keywords) + `">`)
	}
	if cfg.Author != "" {
		b.WriteString(`<meta name="author" content="` + esc(cfg.Author) + `">`)
	}
	if meta.URL != "" {
		b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `">`)
		b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `">`)
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	b.WriteString(`<meta property="og:type" content="` + ogType + `">`)
	b.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `">`)
	if meta.Description != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `">`)
	}
	b.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `">`)
	if meta.Image != "" {
		b.WriteString(`<meta property="og:image" content="` + esc(meta.Image) + `">`)
		b.WriteString(`<meta name="twitter:card" content="summary_large_image">`)
	} else {
		b.WriteString(`<meta name="twitter:card" content="summary">`)
	}
	if cfg.Twitter != "" {
		b.WriteString(`<meta name="twitter:site" content="` + esc(cfg.Twitter) + `">`)
	}
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml">`)
	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	b.WriteString(`<link rel="stylesheet" href="/public/styles.css">`)
	for _, ld := range meta.JSONLD {
		// JSON-LD is produced by our own marshaller from trusted config/content.
		b.WriteString(`<script type="application/ld+json">` + ld + `</script>`)
	}
	b.WriteString(`</head><body>`)
}

func writeHeader(b *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	b.WriteString(`<header class="site-header"><div class="header-inner">`)
	b.WriteString(`<a class="site-title" href="/">` + esc(cfg.Name) + `</a>`)
	b.WriteString(`<nav class="site-nav">`)
	for _, item := range cfg.Nav {
		b.WriteString(`<a href="` + esc(item.Href) + `">` + esc(item.Name) + `</a>`)
	}
	b.WriteString(`</nav>`)
	// Dark-mode preference is a plain persisted cookie toggled by this form.
	b.WriteString(`<form class="theme-toggle" method="post" action="/theme/">`)
	b.WriteString(csrfField(meta.CSRF))
	b.WriteString(`<button type="submit" aria-label="Toggle dark mode">`)
	if meta.Theme == "dark" {
		b.WriteString("&#9728;")
	} else {
		b.WriteString("&#9790;")
	}
	b.WriteString(`</button></form>`)
	b.WriteString(`</div></header>`)
}

func writeFooter(b *bytes.Buffer, cfg SiteConfig, meta PageMeta) {
	b.WriteString(`<footer class="site-footer"><div class="footer-inner">`)

	b.WriteString(`<section class="newsletter"><h2>Stay in touch</h2>`)
	b.WriteString(`<p>Get new reflections delivered to your inbox.</p>`)
	b.WriteString(`<form method="post" action="/newsletter/">`)
	b.WriteString(csrfField(meta.CSRF))
	b.WriteString(`<input type="email" name="email" placeholder="you@example.com" required>`)
	b.WriteString(`<button type="submit">Subscribe</button>`)
	b.WriteString(`</form></section>`)

	b.WriteString(`<nav class="footer-nav">`)
	for _, item := range cfg.Nav {
		b.WriteString(`<a href="` + esc(item.Href) + `">` + esc(item.Name) + `</a>`)
	}
	b.WriteString(`<a href="/privacy">Privacy</a><a href="/terms">Terms</a>`)
	b.WriteString(`</nav>`)

	b.WriteString(`<p class="copyright">&copy; ` + esc(cfg.Name))
	if cfg.Author != "" {
		b.WriteString(` &middot; ` + esc(cfg.Author))
	}
	b.WriteString(`</p>`)
	b.WriteString(`</div></footer>`)
}

func csrfField(token string) string {
	return `<input type="hidden" name="_csrf" value="` + esc(token) + `">`
}
