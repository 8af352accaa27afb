package views

import (
	"reflect"
	"testing"
)

func TestDecodeTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`["go","writing"]`, []string{"go", "writing"}},
		{`[]`, []string{}},
		{``, []string{}},
		{`null`, []string{}},
		{`not json`, []string{}},
		{`{"a":1}`, []string{}},
	}
	for _, tt := range tests {
		got := DecodeTags(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("DecodeTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEncodeTags(t *testing.T) {
	if got := EncodeTags([]string{"go", "writing"}); got != `["go","writing"]` {
		t.Errorf("EncodeTags = %q", got)
	}
	if got := EncodeTags(nil); got != `[]` {
		t.Errorf("EncodeTags(nil) = %q, want []", got)
	}
}

func TestTagsRoundTrip(t *testing.T) {
	in := []string{"life", "growth & change", "日本"}
	got := DecodeTags(EncodeTags(in))
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
