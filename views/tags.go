package views

import "encoding/json"

// DecodeTags parses the JSON-encoded tag array stored on a post record.
// It never fails: malformed or absent input yields an empty list.
func DecodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// EncodeTags serializes a tag list to its canonical JSON array form.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}
