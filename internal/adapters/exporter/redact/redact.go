package redact

import (
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/domain"
)

// Value applies the export-time redaction rule: an ImageUrl holding an inline
// data-URI payload is replaced with the placeholder token. Fetchable URLs
// pass through.
func Value(col, v string) string {
	if col == string(domain.FieldImageURL) && strings.HasPrefix(v, "data:") {
		return domain.EmbeddedImagePlaceholder
	}
	return v
}
