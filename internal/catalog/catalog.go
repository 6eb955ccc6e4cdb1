// Package catalog holds the per-language formula coefficients. The
// built-in table defines which metrics exist for which language; a
// language with no entry for a metric does not support that metric.
package catalog

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Coefficients is one named coefficient set for a (language, metric) pair.
type Coefficients map[string]float64

// Get returns a coefficient by name, or 0 when absent. Formulas use
// fixed, known names; UnknownOverrideKeys detects override keys that can
// never be read through here.
func (c Coefficients) Get(name string) float64 {
	return c[name]
}

// Catalog maps language code -> metric name -> coefficient set.
type Catalog map[string]map[string]Coefficients

var builtin = Catalog{
	"en": {
		"flesch_kincaid_grade_level": {
			"base": 15.59,
			"asl":  0.39,
			"asw":  11.8,
		},
		"flesch_kincaid_reading_ease": {
			"base": 206.835,
			"asl":  1.015,
			"asw":  84.6,
		},
		"dale_chall": {
			"pdw": 0.1579,
			"asl": 0.0496,
		},
		"smog": {
			"mult": 1.0430,
			"base": 3.1291,
		},
		"coleman_liau_index": {
			"l":    0.0588,
			"s":    0.296,
			"base": 15.8,
		},
		"automated_readability_index": {
			"alw":  4.71,
			"asw":  0.5,
			"base": 21.43,
		},
		"forcast": {
			"base": 20,
			"w":    10,
		},
		"gunning_fog_index": {
			"mult": 0.4,
		},
	},
	"de": {
		"flesch_kincaid_reading_ease": {
			"base": 180,
			"asl":  1,
			"asw":  58.5,
		},
	},
}

// Builtin returns a deep copy of the built-in coefficient table, safe for
// the caller to merge overrides into.
func Builtin() Catalog {
	return builtin.clone()
}

func (c Catalog) clone() Catalog {
	out := make(Catalog, len(c))
	for lang, metrics := range c {
		m := make(map[string]Coefficients, len(metrics))
		for name, coeffs := range metrics {
			cc := make(Coefficients, len(coeffs))
			for k, v := range coeffs {
				cc[k] = v
			}
			m[name] = cc
		}
		out[lang] = m
	}
	return out
}

// Coefficients returns the coefficient set for a (language, metric) pair.
func (c Catalog) Coefficients(lang, metric string) (Coefficients, bool) {
	metrics, ok := c[lang]
	if !ok {
		return nil, false
	}
	coeffs, ok := metrics[metric]
	return coeffs, ok
}

// Metrics returns the metric names registered for a language, sorted.
// Unknown languages yield an empty slice.
func (c Catalog) Metrics(lang string) []string {
	metrics := c[lang]
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Languages returns all registered language codes, sorted.
func (c Catalog) Languages() []string {
	langs := make([]string, 0, len(c))
	for lang := range c {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Merge overlays another catalog onto a copy of this one. Overriding a
// coefficient replaces that key only; new metrics and languages are added
// whole.
func (c Catalog) Merge(overrides Catalog) Catalog {
	out := c.clone()
	for lang, metrics := range overrides {
		if _, ok := out[lang]; !ok {
			out[lang] = make(map[string]Coefficients, len(metrics))
		}
		for name, coeffs := range metrics {
			dst, ok := out[lang][name]
			if !ok {
				dst = make(Coefficients, len(coeffs))
				out[lang][name] = dst
			}
			for k, v := range coeffs {
				dst[k] = v
			}
		}
	}
	return out
}

// UnknownOverrideKeys returns the dotted lang.metric.coefficient paths of
// override coefficients that do not exist in this catalog, for languages
// and metrics the catalog registers. A missing coefficient evaluates as 0
// in the formulas, so an unknown key is almost always a typo ("bse" for
// "base") that would silently skew a score. Whole new languages and
// metrics are additions, not typos, and are not reported.
func (c Catalog) UnknownOverrideKeys(overrides Catalog) []string {
	var unknown []string
	for lang, metrics := range overrides {
		baseMetrics, ok := c[lang]
		if !ok {
			continue
		}
		for name, coeffs := range metrics {
			baseCoeffs, ok := baseMetrics[name]
			if !ok {
				continue
			}
			for k := range coeffs {
				if _, ok := baseCoeffs[k]; !ok {
					unknown = append(unknown, lang+"."+name+"."+k)
				}
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ParseOverrides decodes a YAML coefficient table keyed
// language -> metric -> {coefficient: value}.
func ParseOverrides(data []byte) (Catalog, error) {
	var out Catalog
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing coefficient overrides: %w", err)
	}
	return out, nil
}
