package shopify

import (
	"regexp"
	"strings"
)

// NoteFields holds the structured values pulled out of the free-text
// "Note Attributes" blob of a Shopify export row. Empty string means the
// field was not present.
type NoteFields struct {
	Commune      string
	DeliveryDate string
}

// Each extractor captures one field from the annotation text. The date
// pattern deliberately accepts any YYYY-MM-DD shaped token without
// validating it is a real calendar date; aggregation buckets are keyed by
// the literal string.
var noteExtractors = []struct {
	pattern *regexp.Regexp
	assign  func(*NoteFields, string)
}{
	{
		pattern: regexp.MustCompile(`Comuna de Entrega:\s*([^\n]+)`),
		assign:  func(f *NoteFields, v string) { f.Commune = strings.TrimSpace(v) },
	},
	{
		pattern: regexp.MustCompile(`Fecha de Entrega:\s*(\d{4}-\d{2}-\d{2})`),
		assign:  func(f *NoteFields, v string) { f.DeliveryDate = v },
	},
}

// ExtractNoteFields scans the annotation text and returns any recognized
// fields. Unmatched input yields zero values; there is no failure path.
func ExtractNoteFields(text string) NoteFields {
	var fields NoteFields
	if text == "" {
		return fields
	}

	for _, e := range noteExtractors {
		if m := e.pattern.FindStringSubmatch(text); m != nil {
			e.assign(&fields, m[1])
		}
	}

	return fields
}
