package services

import (
	"regexp"
	"sort"
	"strings"
)

// Fixed catalog of recognized technology terms. Terms with regexp
// metacharacters ("c++", "node.js") are escaped when the pattern is built.
var (
	skillLanguages = []string{
		"Python", "Java", "JavaScript", "C++", "C#", "Ruby", "PHP",
		"Swift", "Kotlin", "Go", "Rust", "TypeScript", "Scala", "Perl",
		"R", "MATLAB", "SQL", "HTML", "CSS", "Bash", "Shell",
	}

	skillFrameworks = []string{
		"React", "Angular", "Vue", "Django", "Flask", "Spring", "Express",
		"Node.js", "TensorFlow", "PyTorch", "Keras", "Pandas", "NumPy",
		"Scikit-learn", "Laravel", "Ruby on Rails", "ASP.NET", ".NET",
	}

	skillTools = []string{
		"Git", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Jenkins",
		"CI/CD", "REST", "GraphQL", "Microservices", "Agile", "Scrum",
		"JIRA", "Confluence", "Linux", "Windows", "MacOS", "MongoDB",
		"PostgreSQL", "MySQL", "Oracle", "Redis", "Elasticsearch",
	}

	skillPattern = buildSkillPattern()
)

func buildSkillPattern() *regexp.Regexp {
	var escaped []string
	for _, group := range [][]string{skillLanguages, skillFrameworks, skillTools} {
		for _, keyword := range group {
			escaped = append(escaped, regexp.QuoteMeta(keyword))
		}
	}

	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

// ExtractSkills scans free text for catalog terms. Matching is
// case-insensitive and whole-word, so "java" does not match inside
// "javascript". Returns a deduplicated, lower-cased, sorted set.
func ExtractSkills(text string) []string {
	matches := skillPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	skills := make([]string, 0, len(matches))
	for _, match := range matches {
		skill := strings.ToLower(match)
		if !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	sort.Strings(skills)
	return skills
}

// SkillComparison is a read-only view over two extracted skill sets.
type SkillComparison struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	Additional      []string `json:"additional"`
	MatchPercentage float64  `json:"match_percentage"`
}

// CompareSkills computes matched (resume ∩ job), missing (job − resume) and
// additional (resume − job) skills, plus the percentage of job skills the
// resume covers. The percentage is 0 when the job set is empty.
func CompareSkills(resumeSkills, jobSkills []string) SkillComparison {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[skill] = true
	}
	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[skill] = true
	}

	comparison := SkillComparison{
		Matched:    []string{},
		Missing:    []string{},
		Additional: []string{},
	}

	for skill := range resumeSet {
		if jobSet[skill] {
			comparison.Matched = append(comparison.Matched, skill)
		} else {
			comparison.Additional = append(comparison.Additional, skill)
		}
	}
	for skill := range jobSet {
		if !resumeSet[skill] {
			comparison.Missing = append(comparison.Missing, skill)
		}
	}

	sort.Strings(comparison.Matched)
	sort.Strings(comparison.Missing)
	sort.Strings(comparison.Additional)

	if len(jobSet) > 0 {
		comparison.MatchPercentage = float64(len(comparison.Matched)) / float64(len(jobSet)) * 100
	}

	return comparison
}
