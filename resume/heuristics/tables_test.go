package heuristics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTriggerOrder(t *testing.T) {
	tables := Default()
	got := make([]string, 0, len(tables.Triggers))
	for _, trigger := range tables.Triggers {
		got = append(got, trigger.Section)
	}
	assert.Equal(t, []string{
		SectionSummary, SectionSkills, SectionExperience, SectionEducation,
		SectionCertifications, SectionProjects, SectionReferences,
	}, got)
	assert.True(t, tables.Triggers[3].Exact, "education triggers must match exactly")
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.ReferenceRoster[0] = "Changed"
	assert.Equal(t, "Goldman", b.ReferenceRoster[0])
}

func TestLoadOverridesOnlyPresentLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heuristics.yaml")
	body := []byte("reference_roster:\n  - Hopper\n  - Lovelace\nreference_providers:\n  - proton\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hopper", "Lovelace"}, tables.ReferenceRoster)
	assert.Equal(t, []string{"proton"}, tables.ReferenceProvider)
	assert.Equal(t, Default().RoleKeywords, tables.RoleKeywords)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	tables, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, Default(), tables)
}

func TestMergeRejectsUnknownSection(t *testing.T) {
	err := Merge(Default(), []byte("triggers:\n  - section: hobbies\n    keywords: [HOBBIES]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestMergeRejectsSpliceWithoutTarget(t *testing.T) {
	err := Merge(Default(), []byte("metric_cues:\n  - name: x\n    requires: [lead]\n    mode: splice\n    candidates: [a]\n"))
	require.Error(t, err)
}

func TestIsUpper(t *testing.T) {
	assert.True(t, IsUpper("EDUCATION"))
	assert.True(t, IsUpper("B.S. 2019"))
	assert.False(t, IsUpper("Education"))
	assert.False(t, IsUpper("2019 - 2020"))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Built APIs", StripBullet("• Built APIs"))
	assert.Equal(t, "Built APIs", StripBullet("-Built APIs"))
	assert.Equal(t, "Built APIs", StripBullet(" Built APIs "))
}
