package enrich

import (
	_ "embed"
	"strings"
)

//go:embed prompts/enrich_v1.txt
var promptV1 string

//go:embed prompts/fix_json_v1.txt
var fixJSONV1 string

// Prompt returns the enrichment prompt for résumé text.
func Prompt(text string) string {
	return strings.Replace(promptV1, "{{RESUME_TEXT}}", text, 1)
}

// FixJSONPrompt asks the model to repair a reply that was not valid JSON.
func FixJSONPrompt(raw string) string {
	return strings.Replace(fixJSONV1, "{{RAW}}", raw, 1)
}
