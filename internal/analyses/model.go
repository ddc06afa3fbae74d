package analyses

import (
	"github.com/google/uuid"

	"resume-rocket/resume/model"
)

// Input is one résumé to analyze.
type Input struct {
	Text     string
	FileName string
}

// Result is the outcome of the analyze pipeline.
type Result struct {
	ID          uuid.UUID           `json:"id"`
	FileName    string              `json:"file_name,omitempty"`
	Assessment  model.Assessment    `json:"assessment"`
	Enrichment  *model.Enrichment   `json:"enrichment,omitempty"`
	Suggestions []string            `json:"suggestions"`
	Rewritten   string              `json:"rewritten"`
	CoverLetter bool                `json:"cover_letter"`
	Sections    map[string][]string `json:"sections"`
}
