package render

import (
	"strings"

	"resume-rocket/resume/classify"
	"resume-rocket/resume/heuristics"
)

// Alignment is a paragraph alignment.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// FontFamily is the typeface of every styled paragraph.
const FontFamily = "Arial"

// Style is the paragraph formatting for one render type. Size and spacing
// are in points, Indent in inches.
type Style struct {
	Size        float64
	Bold        bool
	Align       Alignment
	Indent      float64
	SpaceBefore float64
	SpaceAfter  float64
}

const defaultSpaceAfter = 3

// StyleMap is the formatting of every render type.
var StyleMap = map[classify.RenderType]Style{
	classify.Name:             {Size: 18, Bold: true, Align: AlignCenter, SpaceAfter: 6},
	classify.HeaderContact:    {Size: 11, Align: AlignCenter, SpaceAfter: defaultSpaceAfter},
	classify.SectionHeader:    {Size: 14, Bold: true, Align: AlignLeft, SpaceBefore: 12, SpaceAfter: 6},
	classify.ReferenceHeader:  {Size: 12, Bold: true, Align: AlignLeft, SpaceBefore: 8, SpaceAfter: 4},
	classify.ReferenceContact: {Size: 11, Align: AlignLeft, SpaceAfter: defaultSpaceAfter},
	classify.Bullet:           {Size: 11, Align: AlignLeft, Indent: 0.25, SpaceAfter: defaultSpaceAfter},
	classify.SkillContinue:    {Size: 11, Align: AlignLeft, Indent: 0.5, SpaceAfter: 2},
	classify.EducationEntry:   {Size: 11, Align: AlignLeft, SpaceAfter: defaultSpaceAfter},
	classify.JobTitle:         {Size: 12, Bold: true, Align: AlignLeft, SpaceBefore: 6, SpaceAfter: defaultSpaceAfter},
	classify.CompanyInfo:      {Size: 11, Align: AlignLeft, SpaceAfter: defaultSpaceAfter},
	classify.Regular:          {Size: 11, Align: AlignLeft, SpaceAfter: defaultSpaceAfter},
}

var (
	headerRoleStyle = Style{Size: 14, Bold: true, Align: AlignCenter, SpaceAfter: defaultSpaceAfter}
	degreeStyle     = Style{Size: 12, Bold: true, Align: AlignLeft, SpaceAfter: defaultSpaceAfter}
	subheadStyle    = Style{Size: 11, Bold: true, Align: AlignLeft, SpaceAfter: defaultSpaceAfter}
)

// StyleFor returns the style of a classified line. A header line naming a
// role and degree or subheading lines in education get emphasis.
func StyleFor(line classify.Line, tables *heuristics.Tables) Style {
	switch line.Type {
	case classify.HeaderContact:
		if heuristics.ContainsAny(strings.ToLower(line.Text), tables.HeaderRoles) {
			return headerRoleStyle
		}
	case classify.EducationEntry:
		if heuristics.ContainsAny(line.Text, tables.DegreeKeywords) {
			return degreeStyle
		}
		if strings.HasSuffix(line.Text, ":") && heuristics.ContainsAny(line.Text, tables.EducationSubheads) {
			return subheadStyle
		}
	}
	if style, ok := StyleMap[line.Type]; ok {
		return style
	}
	return StyleMap[classify.Regular]
}

// ParagraphText is the text a styled paragraph shows for a classified line.
func ParagraphText(line classify.Line) string {
	switch line.Type {
	case classify.Bullet:
		return heuristics.Bullet + " " + heuristics.StripBullet(line.Text)
	case classify.ReferenceHeader, classify.ReferenceContact:
		return heuristics.StripBullet(line.Text)
	default:
		return line.Text
	}
}
