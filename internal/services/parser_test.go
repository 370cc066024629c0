package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "Jane Doe\n\n  Senior Engineer  \n\nPython, Go"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parser := NewResumeParserService()
	text, err := parser.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Engineer\nPython, Go", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	parser := NewResumeParserService()
	_, err := parser.ExtractText(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestExtractText_MissingFile(t *testing.T) {
	parser := NewResumeParserService()
	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "trims lines and drops blanks",
			in:   "  a  \n\n\n b \n",
			want: "a\nb",
		},
		{
			name: "already clean",
			in:   "a\nb",
			want: "a\nb",
		},
		{
			name: "empty",
			in:   "   \n  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}
