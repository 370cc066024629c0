package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "case insensitive and deduplicated",
			text: "Python and PYTHON",
			want: []string{"python"},
		},
		{
			name: "whole word matching keeps java out of javascript",
			text: "Expert in JavaScript",
			want: []string{"javascript"},
		},
		{
			name: "both java and javascript when both present",
			text: "Java and JavaScript developer",
			want: []string{"java", "javascript"},
		},
		{
			name: "go not matched inside django",
			text: "Django and Flask",
			want: []string{"django", "flask"},
		},
		{
			name: "escaped metacharacter terms",
			text: "C++11 templates and Linux",
			want: []string{"c++", "linux"},
		},
		{
			name: "sorted output",
			text: "Redis, Docker, AWS and Git",
			want: []string{"aws", "docker", "git", "redis"},
		},
		{
			name: "no recognized terms",
			text: "An enthusiastic people person",
			want: []string{},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text)
			assert.Equal(t, tt.want, got)
			assert.True(t, sort.StringsAreSorted(got))
		})
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Python, Go, Docker, Kubernetes, PostgreSQL"
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	assert.Equal(t, first, second)
}

func TestCompareSkills(t *testing.T) {
	resume := []string{"python", "go", "docker"}
	job := []string{"python", "kubernetes"}

	comparison := CompareSkills(resume, job)

	assert.Equal(t, []string{"python"}, comparison.Matched)
	assert.Equal(t, []string{"kubernetes"}, comparison.Missing)
	assert.Equal(t, []string{"docker", "go"}, comparison.Additional)
	assert.Equal(t, 50.0, comparison.MatchPercentage)
}

func TestCompareSkills_PartitionsUnion(t *testing.T) {
	resume := []string{"python", "go", "docker", "redis"}
	job := []string{"python", "kubernetes", "docker", "aws"}

	comparison := CompareSkills(resume, job)

	union := map[string]bool{}
	for _, s := range resume {
		union[s] = true
	}
	for _, s := range job {
		union[s] = true
	}

	var combined []string
	combined = append(combined, comparison.Matched...)
	combined = append(combined, comparison.Missing...)
	combined = append(combined, comparison.Additional...)

	require.Len(t, combined, len(union))
	for _, s := range combined {
		assert.True(t, union[s], "unexpected skill %q in comparison", s)
	}
}

func TestCompareSkills_EmptyJobSet(t *testing.T) {
	comparison := CompareSkills([]string{"python", "go"}, nil)

	assert.Equal(t, 0.0, comparison.MatchPercentage)
	assert.Empty(t, comparison.Matched)
	assert.Empty(t, comparison.Missing)
	assert.Equal(t, []string{"go", "python"}, comparison.Additional)
}

func TestCompareSkills_FullMatch(t *testing.T) {
	comparison := CompareSkills([]string{"python", "go"}, []string{"python", "go"})

	assert.Equal(t, 100.0, comparison.MatchPercentage)
	assert.Empty(t, comparison.Missing)
	assert.Empty(t, comparison.Additional)
}
