package static

import (
	"context"
	"strings"

	"github.com/SHADYEHABOCOR/gLabs/internal/ports"
)

// vocabularySubstitutions are applied to source text before lookup. Menu
// vocabulary rules require these term swaps in all translated output.
var vocabularySubstitutions = map[string]string{
	"pork":  "beef",
	"bacon": "beef bacon",
	"ham":   "turkey ham",
	"wine":  "grape juice",
	"beer":  "malt drink",
	"rum":   "vanilla syrup",
}

// Oracle is an offline, dictionary-backed translation oracle for tests and
// air-gapped runs. Phrases absent from its dictionaries come back empty:
// it never fabricates content.
type Oracle struct {
	toArabic  map[string]string
	toEnglish map[string]string
}

func New(toArabic, toEnglish map[string]string) *Oracle {
	if toArabic == nil {
		toArabic = map[string]string{}
	}
	if toEnglish == nil {
		toEnglish = map[string]string{}
	}
	return &Oracle{toArabic: toArabic, toEnglish: toEnglish}
}

func (o *Oracle) Translate(_ context.Context, dir ports.Direction, reqs []ports.TranslationRequest) ([]ports.TranslationResult, error) {
	dict := o.toArabic
	if dir == ports.ToEnglish {
		dict = o.toEnglish
	}
	out := make([]ports.TranslationResult, 0, len(reqs))
	for _, req := range reqs {
		fields := make(map[string]string, len(req.Fields))
		for f, v := range req.Fields {
			if strings.TrimSpace(v) == "" {
				fields[f] = ""
				continue
			}
			fields[f] = dict[Substitute(v)]
		}
		out = append(out, ports.TranslationResult{ID: req.ID, Fields: fields})
	}
	return out, nil
}

// Substitute rewrites restricted vocabulary in s, case-insensitively on
// whole words.
func Substitute(s string) string {
	words := strings.Fields(s)
	changed := false
	for i, w := range words {
		if repl, ok := vocabularySubstitutions[strings.ToLower(w)]; ok {
			words[i] = repl
			changed = true
		}
	}
	if !changed {
		return s
	}
	return strings.Join(words, " ")
}
