package export

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/stochastic"
)

// Document is the JSON form of a generated series, shared by the CLI and
// the HTTP API.
type Document struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Label   string             `json:"label,omitempty"`
	Branch  string             `json:"branch,omitempty"`
	Seed    int64              `json:"seed"`
	Points  stochastic.Series  `json:"points"`
	Summary analysis.Summary   `json:"summary"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// NewDocument wraps s with a fresh ID and its summary statistics. Points is
// never nil so an empty series encodes as [].
func NewDocument(model string, seed int64, s stochastic.Series) Document {
	if s == nil {
		s = stochastic.Series{}
	}
	return Document{
		ID:      uuid.NewString(),
		Model:   model,
		Seed:    seed,
		Points:  s,
		Summary: analysis.Summarize(s.Values()),
	}
}

func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
