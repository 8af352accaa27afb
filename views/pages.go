package views

import (
	"bytes"

	"github.com/a-h/templ"
)

// About renders the author page.
func About(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page about"><h1>About ` + esc(cfg.Author) + `</h1>`)
		b.WriteString(`<p>Writer, thinker, and explorer of life&#39;s deeper meanings. Sharing reflections on the journey we all walk together.</p>`)
		if cfg.Description != "" {
			b.WriteString(`<p>` + esc(cfg.Description) + `</p>`)
		}
		b.WriteString(`<p><a class="button" href="/blog">Read my writing</a> <a class="button" href="/contact">Get in touch</a></p>`)
		b.WriteString(`</section>`)
	})
}

// Contact renders the contact page.
func Contact(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page contact"><h1>Contact</h1>`)
		b.WriteString(`<p>Questions, thoughts, or just want to say hello? I read every message.</p>`)
		if cfg.AuthorEmail != "" {
			b.WriteString(`<p><a class="button" href="mailto:` + esc(cfg.AuthorEmail) + `">` + esc(cfg.AuthorEmail) + `</a></p>`)
		}
		if cfg.Twitter != "" {
			b.WriteString(`<p>Find me on Twitter: <a href="https://twitter.com/` + esc(twitterHandle(cfg.Twitter)) + `" rel="noopener" target="_blank">` + esc(cfg.Twitter) + `</a></p>`)
		}
		b.WriteString(`</section>`)
	})
}

func twitterHandle(s string) string {
	if len(s) > 0 && s[0] == '@' {
		return s[1:]
	}
	return s
}

// Privacy renders the privacy policy.
func Privacy(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page legal"><h1>Privacy Policy</h1>`)
		b.WriteString(`<p>` + esc(cfg.Name) + ` collects only what it needs to run: an email address when you subscribe to the newsletter, and standard server logs.</p>`)
		b.WriteString(`<h2>Newsletter</h2><p>Your email address is stored solely to deliver new articles. It is never sold or shared, and you can unsubscribe at any time by replying to any email.</p>`)
		b.WriteString(`<h2>Cookies</h2><p>A session cookie is used for the admin area and a preference cookie remembers your dark-mode choice. Neither tracks you across sites.</p>`)
		b.WriteString(`</section>`)
	})
}

// Terms renders the terms of service.
func Terms(cfg SiteConfig, meta PageMeta) templ.Component {
	return page(cfg, meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="page legal"><h1>Terms of Service</h1>`)
		b.WriteString(`<p>All writing on ` + esc(cfg.Name) + ` is the author&#39;s own. You are welcome to quote and link with attribution; wholesale republication requires permission.</p>`)
		b.WriteString(`<p>Content is provided as-is, without warranty of any kind. Views expressed are personal reflections, not professional advice.</p>`)
		b.WriteString(`</section>`)
	})
}
