package views

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Post bodies use a deliberately small paragraph markup: paragraphs are
// separated by blank lines and classified by a fixed four-rule scheme,
// first match wins. There is no inline markup, no nesting, and no escaping;
// content is author-authored and trusted.

// BlockKind identifies how a paragraph renders.
type BlockKind int

const (
	ParagraphBlock BlockKind = iota
	Heading2Block
	Heading3Block
	QuoteBlock
)

// Block is a classified paragraph with its marker stripped.
type Block struct {
	Kind BlockKind
	Text string
}

// SplitBlocks splits content on blank lines and classifies each paragraph:
//
//	"## "  prefix            -> level-2 heading
//	"### " prefix            -> level-3 heading
//	"*...*" (both ends)      -> emphasized quote paragraph
//	anything else            -> plain paragraph
func SplitBlocks(content string) []Block {
	paragraphs := strings.Split(content, "\n\n")
	blocks := make([]Block, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p == "" {
			continue
		}
		switch {
		case strings.HasPrefix(p, "## "):
			blocks = append(blocks, Block{Kind: Heading2Block, Text: p[3:]})
		case strings.HasPrefix(p, "### "):
			blocks = append(blocks, Block{Kind: Heading3Block, Text: p[4:]})
		case len(p) >= 2 && strings.HasPrefix(p, "*") && strings.HasSuffix(p, "*"):
			blocks = append(blocks, Block{Kind: QuoteBlock, Text: p[1 : len(p)-1]})
		default:
			blocks = append(blocks, Block{Kind: ParagraphBlock, Text: p})
		}
	}
	return blocks
}

// Content returns a templ.Component rendering a post body as HTML blocks.
func Content(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderBlocks(&buf, SplitBlocks(content))
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderBlocks(buf *bytes.Buffer, blocks []Block) {
	for _, b := range blocks {
		switch b.Kind {
		case Heading2Block:
			buf.WriteString(`<h2 class="post-heading-2">`)
			buf.WriteString(b.Text)
			buf.WriteString("</h2>")
		case Heading3Block:
			buf.WriteString(`<h3 class="post-heading-3">`)
			buf.WriteString(b.Text)
			buf.WriteString("</h3>")
		case QuoteBlock:
			buf.WriteString(`<p class="post-quote">`)
			buf.WriteString(b.Text)
			buf.WriteString("</p>")
		default:
			buf.WriteString(`<p class="post-paragraph">`)
			buf.WriteString(b.Text)
			buf.WriteString("</p>")
		}
	}
}
