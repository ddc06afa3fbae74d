// Package rewrite assembles formatted sections into the rewritten résumé.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"resume-rocket/resume/format"
	"resume-rocket/resume/heuristics"
	"resume-rocket/resume/model"
	"resume-rocket/resume/quantify"
	"resume-rocket/resume/section"
)

const headerLines = 3

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`)
)

// Document is the rewritten résumé, one entry per output line. Blank
// entries separate sections.
type Document struct {
	Lines       []string
	CoverLetter bool
	Sections    section.Map
}

// Text joins the document lines.
func (d Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Assembler turns raw résumé text into a Document.
type Assembler struct {
	Tables    *heuristics.Tables
	Formatter *format.Formatter
}

// New builds an assembler. A nil injector disables metric injection.
func New(tables *heuristics.Tables, metrics *quantify.Injector) *Assembler {
	if tables == nil {
		tables = heuristics.Default()
	}
	return &Assembler{Tables: tables, Formatter: format.New(tables, metrics)}
}

// IsCoverLetter reports whether text reads like a cover letter.
func (a *Assembler) IsCoverLetter(text string) bool {
	return heuristics.ContainsAny(strings.ToLower(text), a.Tables.CoverLetter)
}

// ExtractName returns the first of the first three lines made of two or
// three alphabetic words.
func ExtractName(lines []string) string {
	for i, line := range lines {
		if i >= headerLines {
			break
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 3 {
			continue
		}
		if allLetters(words) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

func allLetters(words []string) bool {
	for _, w := range words {
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// ExtractContact returns the first email and phone found, joined by " | ".
func ExtractContact(text string) string {
	var parts []string
	if email := emailPattern.FindString(text); email != "" {
		parts = append(parts, email)
	}
	if phone := phonePattern.FindString(text); phone != "" {
		parts = append(parts, phone)
	}
	return strings.Join(parts, " | ")
}

// RemoveEmojis strips pictographs and dingbats.
func RemoveEmojis(text string) string {
	return emojiPattern.ReplaceAllString(text, "")
}

// Rewrite produces the professional version of text. Cover letters are
// replaced by a résumé skeleton; everything else is segmented and formatted.
func (a *Assembler) Rewrite(text string, assessment model.Assessment) Document {
	if strings.TrimSpace(text) == "" {
		return Document{Sections: section.Map{}}
	}
	if a.IsCoverLetter(text) {
		return Document{Lines: a.coverLetter(text, assessment), CoverLetter: true, Sections: section.Map{}}
	}

	lines := section.SplitLines(RemoveEmojis(text))
	sections := section.Segment(lines, a.Tables)
	return Document{Lines: trimBlank(a.assemble(sections, a.triggered(lines))), Sections: sections}
}

// triggered reports whether any line opens a section.
func (a *Assembler) triggered(lines []string) bool {
	for _, line := range lines {
		if _, ok := section.Trigger(line, a.Tables); ok {
			return true
		}
	}
	return false
}

type block struct {
	tag    section.Tag
	label  string
	format func([]string) []string
}

func (a *Assembler) blocks() []block {
	f := a.Formatter
	return []block{
		{section.Summary, heuristics.LabelSummary, f.Summary},
		{section.Skills, heuristics.LabelSkills, f.Skills},
		{section.Experience, heuristics.LabelExperience, f.Experience},
		{section.Projects, heuristics.LabelProjects, f.Projects},
		{section.Education, heuristics.LabelEducation, f.Education},
		{section.Certifications, heuristics.LabelCertifications, f.Certifications},
		{section.References, heuristics.LabelReferences, f.References},
		{section.Other, "", f.Education},
	}
}

func (a *Assembler) assemble(sections section.Map, triggered bool) []string {
	var out []string

	header := sections.Lines(section.Header)
	// A document without any recognised heading keeps every line.
	if len(header) > headerLines && triggered {
		header = header[:headerLines]
	}
	if len(header) > 0 {
		out = append(out, header...)
		out = append(out, "")
	}

	for _, b := range a.blocks() {
		lines := b.format(sections.Lines(b.tag))
		if len(lines) == 0 {
			continue
		}
		if b.label != "" {
			out = append(out, b.label)
		}
		out = append(out, lines...)
		out = append(out, "")
	}
	return out
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if start == end {
		return nil
	}
	return lines[start:end]
}

func (a *Assembler) coverLetter(text string, assessment model.Assessment) []string {
	name := ExtractName(section.SplitLines(text))
	if name == "" {
		name = "[Your Full Name]"
	}
	contact := ExtractContact(text)
	if contact == "" {
		contact = "[Your Email] | [Your Phone] | [Your City, State] | [LinkedIn Profile]"
	}

	lines := []string{name, contact, ""}
	lines = append(lines, skeleton...)
	lines = append(lines, "", fmt.Sprintf("ATS Score: %d/100 (Improved from original)", assessment.Score))
	return lines
}

var skeleton = []string{
	heuristics.LabelSummary,
	"Results-driven professional with proven expertise in [your field]. Demonstrated ability to [key achievement from cover letter]. Seeking to leverage [relevant skills] to contribute to [target company/role].",
	"",
	heuristics.LabelSkills,
	"• [Skill 1 - extracted from your cover letter]",
	"• [Skill 2 - add technical skills relevant to your field]",
	"• [Skill 3 - add soft skills like leadership, communication]",
	"• [Skill 4 - add industry-specific skills]",
	"• [Skill 5 - add tools/software proficiency]",
	"",
	heuristics.LabelExperience,
	"",
	"[Most Recent Job Title] | [Company Name] | [Dates]",
	"• [Achievement 1 - quantify with metrics when possible]",
	`• [Achievement 2 - start with action verbs like "Managed," "Developed," "Led"]`,
	"• [Achievement 3 - focus on results and impact]",
	"• [Achievement 4 - include relevant skills and technologies]",
	"",
	"[Previous Job Title] | [Company Name] | [Dates]",
	"• [Achievement 1 - highlight promotions or increased responsibilities]",
	"• [Achievement 2 - include any awards or recognition]",
	"• [Achievement 3 - demonstrate problem-solving abilities]",
	"",
	heuristics.LabelEducation,
	"[Degree] in [Field] | [University Name] | [Graduation Year]",
	"• Relevant Coursework: [List 2-3 relevant courses]",
	"• [Include GPA if 3.5 or higher, honors, or relevant projects]",
	"",
	"ADDITIONAL QUALIFICATIONS",
	"• Certifications: [List any professional certifications]",
	"• Languages: [List languages and proficiency levels]",
	"• Volunteer Work: [Include if relevant to target role]",
	"",
	"---",
	"REWRITE NOTES:",
	"• This resume was generated from your cover letter content",
	"• Replace bracketed placeholders with your specific information",
	"• Quantify achievements with specific numbers, percentages, or dollar amounts",
	"• Tailor the skills section to match your target job requirements",
	"• Add 2-3 more work experiences if you have them",
	"• Consider adding a Projects or Publications section if relevant",
}
