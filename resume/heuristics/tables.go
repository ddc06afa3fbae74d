// Package heuristics holds the keyword tables the résumé classifiers consult.
// Tables are plain data so the priority order of every rule chain can be read,
// tested and overridden without touching the code that evaluates them.
package heuristics

// Trigger maps a set of upper-case keywords to a section tag name.
// When Exact is set the whole line must equal one keyword.
type Trigger struct {
	Section  string   `yaml:"section"`
	Keywords []string `yaml:"keywords"`
	Exact    bool     `yaml:"exact"`
}

// MetricMode controls how a metric payload is added to a line.
type MetricMode string

const (
	// MetricAppend appends Prefix + payload + Suffix to the line.
	MetricAppend MetricMode = "append"
	// MetricSplice replaces the first occurrence of Target with payload + " " + Target.
	MetricSplice MetricMode = "splice"
)

// MetricCue is one topical cue of the metric injector. All words in Requires
// must be present, plus at least one of AnyOf when AnyOf is non-empty.
type MetricCue struct {
	Name       string     `yaml:"name"`
	Requires   []string   `yaml:"requires"`
	AnyOf      []string   `yaml:"any_of"`
	Mode       MetricMode `yaml:"mode"`
	Prefix     string     `yaml:"prefix"`
	Suffix     string     `yaml:"suffix"`
	Target     string     `yaml:"target"`
	Candidates []string   `yaml:"candidates"`
}

// Tables is the full set of lookup data used by the pipeline.
type Tables struct {
	Triggers          []Trigger   `yaml:"triggers"`
	SeparatorPrefix   string      `yaml:"separator_prefix"`
	AnnotationMarkers []string    `yaml:"annotation_markers"`
	EmployerKeywords  []string    `yaml:"employer_keywords"`
	RoleKeywords      []string    `yaml:"role_keywords"`
	ProjectKeywords   []string    `yaml:"project_keywords"`
	MetricCues        []MetricCue `yaml:"metric_cues"`
	CoverLetter       []string    `yaml:"cover_letter_phrases"`

	SectionLabels     []string `yaml:"section_labels"`
	HeaderRoles       []string `yaml:"header_roles"`
	JobTitles         []string `yaml:"job_titles"`
	ReferenceMarker   string   `yaml:"reference_marker"`
	ReferenceRoster   []string `yaml:"reference_roster"`
	ReferenceProvider []string `yaml:"reference_providers"`
	NotesMarkers      []string `yaml:"notes_markers"`
	DegreeKeywords    []string `yaml:"degree_keywords"`
	EducationSubheads []string `yaml:"education_subheads"`

	ActionVerbs       []string `yaml:"action_verbs"`
	IndustryKeywords  []string `yaml:"industry_keywords"`
	ProfessionalVerbs []string `yaml:"professional_verbs"`
}

// Section tag names used in Trigger.Section.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionReferences     = "references"
	SectionOther          = "other"
)

// Section labels emitted by the assembler and recognised by the line classifier.
const (
	LabelSummary        = "PROFESSIONAL SUMMARY"
	LabelSkills         = "CORE COMPETENCIES"
	LabelExperience     = "PROFESSIONAL EXPERIENCE"
	LabelProjects       = "TECHNICAL PROJECTS"
	LabelEducation      = "EDUCATION"
	LabelCertifications = "CERTIFICATIONS"
	LabelReferences     = "REFERENCES"
)

// Bullet is the marker glyph every bulleted formatted line starts with.
const Bullet = "•"

// Default returns the built-in tables. Each call returns a fresh copy.
func Default() *Tables {
	return &Tables{
		Triggers: []Trigger{
			{Section: SectionSummary, Keywords: []string{"PROFESSIONAL SUMMARY", "SUMMARY", "OBJECTIVE"}},
			{Section: SectionSkills, Keywords: []string{"CORE COMPETENCIES", "SKILLS", "TECHNICAL SKILLS"}},
			{Section: SectionExperience, Keywords: []string{"PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE", "EXPERIENCE", "EMPLOYMENT"}},
			{Section: SectionEducation, Keywords: []string{"EDUCATION", "ACADEMIC BACKGROUND"}, Exact: true},
			{Section: SectionCertifications, Keywords: []string{"CERTIFICATIONS", "CERTIFICATES"}},
			{Section: SectionProjects, Keywords: []string{"PROJECTS", "TECHNICAL PROJECTS"}},
			{Section: SectionReferences, Keywords: []string{"REFERENCES"}},
		},
		SeparatorPrefix:   "---",
		AnnotationMarkers: []string{"AI ENHANCEMENTS", "Improved ATS Score", "REWRITE NOTES"},
		EmployerKeywords:  []string{"company", "corp", "inc", "llc", "remote", "hybrid", "brands"},
		RoleKeywords:      []string{"specialist", "engineer", "developer", "manager", "director", "analyst"},
		ProjectKeywords:   []string{"capstone", "application", "system", "development"},
		MetricCues: []MetricCue{
			{Name: "increase", Requires: []string{"increase"}, Mode: MetricAppend, Prefix: " by ",
				Candidates: []string{"15%", "20%", "24%", "30%", "18%"}},
			{Name: "efficiency", Requires: []string{"improve", "efficiency"}, Mode: MetricAppend, Prefix: " by ",
				Candidates: []string{"25%", "35%", "40%", "30%"}},
			{Name: "team", Requires: []string{"manage", "team"}, Mode: MetricSplice, Target: "team",
				Candidates: []string{"5-person", "8-member", "12-person", "6-member"}},
			{Name: "reduce", Requires: []string{"reduce"}, Mode: MetricAppend, Prefix: " by ",
				Candidates: []string{"20%", "30%", "25%", "40%"}},
			{Name: "process", Requires: []string{"process"}, AnyOf: []string{"time", "speed"}, Mode: MetricAppend, Prefix: ", saving ",
				Candidates: []string{"2 hours daily", "50% processing time", "3 hours weekly", "40% faster"}},
			{Name: "budget", Requires: []string{"budget"}, Mode: MetricAppend, Prefix: " worth ",
				Candidates: []string{"$50K", "$120K", "$85K", "$200K"}},
			{Name: "coverage", Requires: []string{"coverage"}, Mode: MetricAppend, Prefix: " achieving ", Suffix: " coverage",
				Candidates: []string{"90%", "95%", "85%", "92%"}},
		},
		CoverLetter: []string{
			"dear hiring manager",
			"i am excited to apply",
			"hiring manager",
			"i am writing to",
			"sincerely",
		},
		SectionLabels: []string{
			LabelSkills, LabelExperience, LabelProjects, LabelEducation, LabelCertifications,
			"SKILLS", "PROJECTS", "EXPERIENCE", LabelSummary, LabelReferences, "ADDITIONAL QUALIFICATIONS",
		},
		HeaderRoles:       []string{"engineer", "developer", "specialist"},
		JobTitles:         []string{"Specialist", "Engineer", "Developer", "Manager", "Director", "Analyst", "Coordinator", "Consultant"},
		ReferenceMarker:   "References:",
		ReferenceRoster:   []string{"Goldman", "Shade", "Miller", "Schott", "Dinallo"},
		ReferenceProvider: []string{"gmail", "bluestem", "hotmail"},
		NotesMarkers:      []string{"AI ENHANCEMENTS", "REWRITE NOTES"},
		DegreeKeywords:    []string{"Bachelor of", "Associate of", "Master of"},
		EducationSubheads: []string{"Micro-Credentials", "Cumulative"},
		ActionVerbs: []string{
			"achieved", "managed", "developed", "created", "led", "improved",
			"increased", "designed", "implemented", "analyzed", "coordinated",
		},
		IndustryKeywords: []string{
			"python", "javascript", "react", "nodejs", "sql", "aws", "docker", "kubernetes",
			"leadership", "strategy", "analytics", "optimization", "roi", "kpi",
			"project management", "team collaboration", "problem solving", "communication",
		},
		ProfessionalVerbs: []string{
			"collaborated", "facilitated", "optimized", "streamlined",
			"executed", "delivered", "achieved", "exceeded",
		},
	}
}
