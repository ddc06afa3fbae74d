package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/resume/heuristics"
)

func TestSegmentScenario(t *testing.T) {
	text := "John Smith\njohn@x.com | 555-123-4567\nEXPERIENCE\nManaged team\nEDUCATION\nBS Computer Science"
	got := Segment(SplitLines(text), heuristics.Default())

	assert.Equal(t, []string{"John Smith", "john@x.com | 555-123-4567"}, got.Lines(Header))
	assert.Equal(t, []string{"Managed team"}, got.Lines(Experience))
	assert.Equal(t, []string{"BS Computer Science"}, got.Lines(Education))
	assert.Empty(t, got.Lines(Skills))
}

func TestSegmentConsumesTriggerLines(t *testing.T) {
	lines := []string{
		"Jane Roe",
		"Professional Summary",
		"Builder of things",
		"Technical Skills",
		"Go, SQL",
		"Work Experience",
		"Engineer at Acme",
		"Certifications",
		"CKA",
		"Projects",
		"Resume parser",
		"References",
		"Available on request",
	}
	got := Segment(lines, heuristics.Default())

	assert.Equal(t, []string{"Jane Roe"}, got.Lines(Header))
	assert.Equal(t, []string{"Builder of things"}, got.Lines(Summary))
	assert.Equal(t, []string{"Go, SQL"}, got.Lines(Skills))
	assert.Equal(t, []string{"Engineer at Acme"}, got.Lines(Experience))
	assert.Equal(t, []string{"CKA"}, got.Lines(Certifications))
	assert.Equal(t, []string{"Resume parser"}, got.Lines(Projects))
	assert.Equal(t, []string{"Available on request"}, got.Lines(References))

	for _, tagged := range got {
		for _, line := range tagged {
			_, isTrigger := Trigger(line, heuristics.Default())
			assert.False(t, isTrigger, "trigger line %q leaked into a section", line)
		}
	}
}

func TestSegmentEducationNeedsExactMatch(t *testing.T) {
	lines := []string{"EXPERIENCE", "Led continuing education program", "Education", "BA History"}
	got := Segment(lines, heuristics.Default())

	assert.Equal(t, []string{"Led continuing education program"}, got.Lines(Experience))
	assert.Equal(t, []string{"BA History"}, got.Lines(Education))
}

func TestSegmentDropsSeparatorsAndAnnotations(t *testing.T) {
	lines := []string{
		"Jane Roe",
		"---",
		"AI ENHANCEMENTS APPLIED",
		"Improved ATS Score: 80",
		"Product designer",
	}
	got := Segment(lines, heuristics.Default())
	assert.Equal(t, []string{"Jane Roe", "Product designer"}, got.Lines(Header))
}

func TestSegmentWithoutTriggersKeepsEverythingInHeader(t *testing.T) {
	lines := []string{"one", "two", "three"}
	got := Segment(lines, heuristics.Default())
	require.Len(t, got, 1)
	assert.Equal(t, lines, got.Lines(Header))
}

func TestSegmentEveryLineAccountedFor(t *testing.T) {
	lines := SplitLines("A\nSKILLS\nGo\n---\nEXPERIENCE\nDid work\n\nAI ENHANCEMENTS\nMore work")
	got := Segment(lines, heuristics.Default())

	total := 0
	for _, tagged := range got {
		total += len(tagged)
	}
	// 8 lines: 2 triggers and 2 dropped
	assert.Equal(t, len(lines)-4, total)
}

func TestSegmentBlankInput(t *testing.T) {
	got := Segment(SplitLines("   \n"), heuristics.Default())
	assert.True(t, got.Empty())

	got = Segment(nil, nil)
	assert.True(t, got.Empty())
}

func TestSplitLinesNormalizesEndings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\r\n  b \r\n\r\nc"))
	assert.Nil(t, SplitLines(""))
}
