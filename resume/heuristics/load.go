package heuristics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML override file and merges it over Default. Lists present
// in the file replace the built-in list wholesale; absent lists keep their
// defaults. An empty path returns Default.
func Load(path string) (*Tables, error) {
	tables := Default()
	if strings.TrimSpace(path) == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read heuristics %s: %w", path, err)
	}
	if err := Merge(tables, raw); err != nil {
		return nil, fmt.Errorf("parse heuristics %s: %w", path, err)
	}
	return tables, nil
}

// Merge decodes YAML into an override set and applies it to tables.
func Merge(tables *Tables, raw []byte) error {
	var override Tables
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return err
	}
	if err := override.validate(); err != nil {
		return err
	}

	if len(override.Triggers) > 0 {
		tables.Triggers = override.Triggers
	}
	if override.SeparatorPrefix != "" {
		tables.SeparatorPrefix = override.SeparatorPrefix
	}
	if override.ReferenceMarker != "" {
		tables.ReferenceMarker = override.ReferenceMarker
	}
	if len(override.MetricCues) > 0 {
		tables.MetricCues = override.MetricCues
	}
	replace(&tables.AnnotationMarkers, override.AnnotationMarkers)
	replace(&tables.EmployerKeywords, override.EmployerKeywords)
	replace(&tables.RoleKeywords, override.RoleKeywords)
	replace(&tables.ProjectKeywords, override.ProjectKeywords)
	replace(&tables.CoverLetter, override.CoverLetter)
	replace(&tables.SectionLabels, override.SectionLabels)
	replace(&tables.HeaderRoles, override.HeaderRoles)
	replace(&tables.JobTitles, override.JobTitles)
	replace(&tables.ReferenceRoster, override.ReferenceRoster)
	replace(&tables.ReferenceProvider, override.ReferenceProvider)
	replace(&tables.NotesMarkers, override.NotesMarkers)
	replace(&tables.DegreeKeywords, override.DegreeKeywords)
	replace(&tables.EducationSubheads, override.EducationSubheads)
	replace(&tables.ActionVerbs, override.ActionVerbs)
	replace(&tables.IndustryKeywords, override.IndustryKeywords)
	replace(&tables.ProfessionalVerbs, override.ProfessionalVerbs)
	return nil
}

func (t Tables) validate() error {
	for i, trigger := range t.Triggers {
		if !knownSection(trigger.Section) {
			return fmt.Errorf("triggers[%d]: unknown section %q", i, trigger.Section)
		}
		if len(trigger.Keywords) == 0 {
			return fmt.Errorf("triggers[%d]: keywords are required", i)
		}
	}
	for i, cue := range t.MetricCues {
		if len(cue.Requires) == 0 {
			return fmt.Errorf("metric_cues[%d]: requires is empty", i)
		}
		if len(cue.Candidates) == 0 {
			return fmt.Errorf("metric_cues[%d]: candidates is empty", i)
		}
		switch cue.Mode {
		case MetricAppend:
		case MetricSplice:
			if cue.Target == "" {
				return fmt.Errorf("metric_cues[%d]: splice needs a target", i)
			}
		default:
			return fmt.Errorf("metric_cues[%d]: unknown mode %q", i, cue.Mode)
		}
	}
	return nil
}

func knownSection(name string) bool {
	switch name {
	case SectionSummary, SectionSkills, SectionExperience, SectionEducation,
		SectionCertifications, SectionProjects, SectionReferences, SectionOther, SectionHeader:
		return true
	default:
		return false
	}
}

func replace(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}
