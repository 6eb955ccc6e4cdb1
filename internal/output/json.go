package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders reports as a JSON array, one object per file.
type JSONFormatter struct{}

type jsonReport struct {
	File   string             `json:"file"`
	Stats  jsonStats          `json:"stats"`
	Scores map[string]float64 `json:"scores"`
}

type jsonStats struct {
	Sentences int `json:"sentences"`
	Words     int `json:"words"`
	Syllables int `json:"syllables"`
	Letters   int `json:"letters"`
}

// Format writes indented JSON. The metrics argument is unused: JSON
// consumers key by name, not column position.
func (f *JSONFormatter) Format(w io.Writer, reports []Report, _ []string) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		scores := r.Scores
		if scores == nil {
			scores = map[string]float64{}
		}
		out = append(out, jsonReport{
			File: r.Path,
			Stats: jsonStats{
				Sentences: r.Aggregates.Sentences,
				Words:     r.Aggregates.Words,
				Syllables: r.Aggregates.Syllables,
				Letters:   r.Aggregates.Letters,
			},
			Scores: scores,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
