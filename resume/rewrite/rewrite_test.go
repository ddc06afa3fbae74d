package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/model"
	"resume-rocket/resume/quantify"
	"resume-rocket/resume/section"
)

type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

func newAssembler() *Assembler {
	tables := heuristics.Default()
	return New(tables, quantify.New(tables.MetricCues, firstPick{}))
}

func TestRewriteScenarioResume(t *testing.T) {
	a := newAssembler()
	text := "John Smith\njohn@x.com | 555-123-4567\nEXPERIENCE\nManaged team\nEDUCATION\nBS Computer Science"

	doc := a.Rewrite(text, model.Assessment{Score: 72})

	require.False(t, doc.CoverLetter)
	assert.Equal(t, []string{
		"John Smith",
		"john@x.com | 555-123-4567",
		"",
		"PROFESSIONAL EXPERIENCE",
		"• Managed 5-person team",
		"",
		"EDUCATION",
		"BS Computer Science",
	}, doc.Lines)
	assert.Equal(t, []string{"Managed team"}, doc.Sections.Lines(section.Experience))
}

func TestRewriteExperienceLineGainsMetricWithAnySource(t *testing.T) {
	tables := heuristics.Default()
	a := New(tables, quantify.NewSeeded(tables.MetricCues, 7))
	doc := a.Rewrite("EXPERIENCE\nManaged team", model.Assessment{})

	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "PROFESSIONAL EXPERIENCE", doc.Lines[0])
	assert.True(t, strings.HasPrefix(doc.Lines[1], "• Managed "))
	assert.False(t, quantify.Eligible(doc.Lines[1]))
}

func TestRewriteCoverLetter(t *testing.T) {
	a := newAssembler()
	doc := a.Rewrite("Dear Hiring Manager, I am writing to apply for the role.\nSincerely", model.Assessment{Score: 64})

	require.True(t, doc.CoverLetter)
	assert.Equal(t, "[Your Full Name]", doc.Lines[0])
	assert.Equal(t, "[Your Email] | [Your Phone] | [Your City, State] | [LinkedIn Profile]", doc.Lines[1])
	assert.Contains(t, doc.Lines, "PROFESSIONAL SUMMARY")
	assert.Equal(t, "ATS Score: 64/100 (Improved from original)", doc.Lines[len(doc.Lines)-1])
}

func TestRewriteCoverLetterUsesExtractedDetails(t *testing.T) {
	a := newAssembler()
	text := "Ada Lovelace\nada@example.org 555.867.5309\nDear Hiring Manager,\nI am excited to apply."
	doc := a.Rewrite(text, model.Assessment{})

	assert.Equal(t, "Ada Lovelace", doc.Lines[0])
	assert.Equal(t, "ada@example.org | 555.867.5309", doc.Lines[1])
}

func TestRewriteSectionOrderAndSpacing(t *testing.T) {
	a := newAssembler()
	text := strings.Join([]string{
		"Jane Roe",
		"REFERENCES",
		"• Available on request",
		"CERTIFICATIONS",
		"CKA",
		"SKILLS",
		"Languages: Go",
		"SUMMARY",
		"Platform engineer",
	}, "\n")

	doc := a.Rewrite(text, model.Assessment{})
	assert.Equal(t, []string{
		"Jane Roe",
		"",
		"PROFESSIONAL SUMMARY",
		"Platform engineer",
		"",
		"CORE COMPETENCIES",
		"• Languages: Go",
		"",
		"CERTIFICATIONS",
		"• CKA",
		"",
		"REFERENCES",
		"Available on request",
	}, doc.Lines)
}

func TestRewriteHeaderCappedWhenSectionsExist(t *testing.T) {
	a := newAssembler()
	doc := a.Rewrite("A B\nline two\nline three\nline four\nEDUCATION\nBA", model.Assessment{})
	assert.Equal(t, []string{"A B", "line two", "line three", "", "EDUCATION", "BA"}, doc.Lines)
}

func TestRewriteHeaderCappedWhenTriggeredSectionIsEmpty(t *testing.T) {
	a := newAssembler()
	doc := a.Rewrite("A B\nline two\nline three\nline four\nSKILLS", model.Assessment{})
	assert.Equal(t, []string{"A B", "line two", "line three"}, doc.Lines)
}

func TestRewriteOtherSectionFollowsReferencesWithoutLabel(t *testing.T) {
	tables := heuristics.Default()
	tables.Triggers = append(tables.Triggers, heuristics.Trigger{
		Section:  heuristics.SectionOther,
		Keywords: []string{"VOLUNTEERING"},
		Exact:    true,
	})
	a := New(tables, nil)

	doc := a.Rewrite("Jane Roe\nREFERENCES\nOn request\nVolunteering\nFood  bank   helper", model.Assessment{})

	assert.Equal(t, []string{
		"Jane Roe",
		"",
		"REFERENCES",
		"On request",
		"",
		"Food bank helper",
	}, doc.Lines)
	assert.Equal(t, []string{"Food  bank   helper"}, doc.Sections.Lines(section.Other))
}

func TestRewriteWithoutTriggersKeepsAllLines(t *testing.T) {
	a := newAssembler()
	doc := a.Rewrite("one\ntwo\nthree\nfour", model.Assessment{})
	assert.Equal(t, []string{"one", "two", "three", "four"}, doc.Lines)
}

func TestRewriteEmptyInput(t *testing.T) {
	a := newAssembler()
	for _, text := range []string{"", " ", "\n\n"} {
		doc := a.Rewrite(text, model.Assessment{})
		assert.Empty(t, doc.Lines)
		assert.Equal(t, "", doc.Text())
		assert.True(t, doc.Sections.Empty())
	}
}

func TestRewriteRemovesEmojis(t *testing.T) {
	a := newAssembler()
	doc := a.Rewrite("Jane Roe 🚀\nSKILLS\nGo 😀", model.Assessment{})
	assert.Equal(t, "Jane Roe", doc.Lines[0])
	assert.Equal(t, "• Additional: Go", doc.Lines[len(doc.Lines)-1])
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "Mary Jane Watson", ExtractName([]string{"Resume 2024", "Mary Jane Watson"}))
	assert.Equal(t, "", ExtractName([]string{"a", "b c d e", "x1 y", "Late Name"}))
	assert.Equal(t, "", ExtractName(nil))
}

func TestExtractContact(t *testing.T) {
	assert.Equal(t, "a.b@c.io | 555-123-4567", ExtractContact("call 555-123-4567 or a.b@c.io"))
	assert.Equal(t, "", ExtractContact("nothing here"))
}

func TestIsCoverLetter(t *testing.T) {
	a := newAssembler()
	assert.True(t, a.IsCoverLetter("To the HIRING MANAGER"))
	assert.False(t, a.IsCoverLetter("Engineering manager"))
}
