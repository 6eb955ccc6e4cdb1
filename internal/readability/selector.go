package readability

import (
	"strings"

	"github.com/prosegrade/prosegrade/internal/catalog"
)

// Resolve returns the active metric definitions for a language, in
// registry order. With no requested subset, every metric the catalog
// registers for the language is active. With a subset, the result is the
// intersection: names unknown to the registry or unsupported for the
// language are silently dropped. An unknown language resolves to no
// metrics.
func Resolve(cat catalog.Catalog, lang string, requested []string) []Definition {
	supported := make(map[string]struct{})
	for _, name := range cat.Metrics(lang) {
		supported[name] = struct{}{}
	}

	var want map[string]struct{}
	if len(requested) > 0 {
		want = make(map[string]struct{}, len(requested))
		for _, name := range requested {
			name = strings.TrimSpace(name)
			if name != "" {
				want[name] = struct{}{}
			}
		}
	}

	var active []Definition
	for _, def := range registry {
		if _, ok := supported[def.Name]; !ok {
			continue
		}
		if want != nil {
			if _, ok := want[def.Name]; !ok {
				continue
			}
		}
		active = append(active, def)
	}
	return active
}

// SplitList parses a comma-separated metric name list.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
