package views

import (
	"testing"
)

func TestSplitBlocksClassification(t *testing.T) {
	tests := []struct {
		input string
		kind  BlockKind
		text  string
	}{
		{"## Section Title", Heading2Block, "Section Title"},
		{"### Subsection", Heading3Block, "Subsection"},
		{"*a quiet aside*", QuoteBlock, "a quiet aside"},
		{"plain text paragraph", ParagraphBlock, "plain text paragraph"},
		{"##not a heading", ParagraphBlock, "##not a heading"},
		{"*unterminated emphasis", ParagraphBlock, "*unterminated emphasis"},
		{"*", ParagraphBlock, "*"},
		{"**", QuoteBlock, ""},
	}
	for _, tt := range tests {
		blocks := SplitBlocks(tt.input)
		if len(blocks) != 1 {
			t.Fatalf("SplitBlocks(%q) returned %d blocks, want 1", tt.input, len(blocks))
		}
		if blocks[0].Kind != tt.kind || blocks[0].Text != tt.text {
			t.Errorf("SplitBlocks(%q) = {%v %q}, want {%v %q}", tt.input, blocks[0].Kind, blocks[0].Text, tt.kind, tt.text)
		}
	}
}

func TestSplitBlocksParagraphSeparation(t *testing.T) {
	content := "## Opening\n\nFirst paragraph.\n\n\n\nSecond paragraph.\n\n*a closing thought*"
	blocks := SplitBlocks(content)

	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4 (empty paragraphs are skipped): %v", len(blocks), blocks)
	}
	kinds := []BlockKind{Heading2Block, ParagraphBlock, ParagraphBlock, QuoteBlock}
	for i, k := range kinds {
		if blocks[i].Kind != k {
			t.Errorf("block %d kind = %v, want %v", i, blocks[i].Kind, k)
		}
	}
}

func TestRenderContent(t *testing.T) {
	got := RenderContent("## Title\n\nBody text.\n\n*a quote*")
	want := `<h2 class="post-heading-2">Title</h2>` +
		`<p class="post-paragraph">Body text.</p>` +
		`<p class="post-quote">a quote</p>`
	if got != want {
		t.Errorf("RenderContent = %q, want %q", got, want)
	}
}

func TestRenderContentTrustsInput(t *testing.T) {
	got := RenderContent("Text with <em>markup</em> kept & intact")
	want := `<p class="post-paragraph">Text with <em>markup</em> kept & intact</p>`
	if got != want {
		t.Errorf("RenderContent = %q, want %q", got, want)
	}
}
