package phases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillaudit/skillaudit/internal/domain"
)

func TestWordCount_BelowMinimum(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.WordCount.Min = 10
	cfg.WordCount.Max = 0

	doc := buildDoc(t, "thin", "thin", "---\nname: thin\n---\n\nToo short.\n")

	issues := WordCount{Config: cfg}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "body is 2 words (minimum 10)")
}

func TestWordCount_AboveMaximum(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.WordCount.Min = 0
	cfg.WordCount.Max = 5

	doc := buildDoc(t, "fat", "fat",
		"---\nname: fat\n---\n\none two three four five six seven\n")

	issues := WordCount{Config: cfg}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "body is 7 words (maximum 5)")
}

func TestWordCount_WithinBudget(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.WordCount.Min = 2
	cfg.WordCount.Max = 10

	doc := buildDoc(t, "fit", "fit", "---\nname: fit\n---\n\none two three\n")

	assert.Empty(t, WordCount{Config: cfg}.Validate(doc))
}

func TestTodoMarkers_OneIssuePerDocumentWithContext(t *testing.T) {
	doc := buildDoc(t, "marked", "marked",
		"---\nname: marked\n---\n\nTODO: finish this.\n\nFIXME handle errors.\n\nXXX revisit.\n\nAlso TODO here.\n")

	issues := TodoMarkers{}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "4 TODO/FIXME marker(s)")
	assert.Len(t, issues[0].Context, 3)
}

func TestTodoMarkers_IgnoresFencedCode(t *testing.T) {
	doc := buildDoc(t, "fenced", "fenced",
		"---\nname: fenced\n---\n\n```go\n// TODO: this is example code\n```\n\nClean prose.\n")

	assert.Empty(t, TodoMarkers{}.Validate(doc))
}

func TestTodoMarkers_WordBoundary(t *testing.T) {
	doc := buildDoc(t, "subtle", "subtle",
		"---\nname: subtle\n---\n\nThe TODOLIST pattern is fine to mention.\n")

	assert.Empty(t, TodoMarkers{}.Validate(doc))
}

func TestLineLength_OneIssuePerDocument(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxLineLength = 40

	long := strings.Repeat("a", 50)
	doc := buildDoc(t, "wide", "wide",
		"---\nname: wide\n---\n\n"+long+"\n\nshort line\n\n"+long+"\n")

	issues := LineLength{Config: cfg}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "2 line(s) longer than 40 characters")
}

func TestLineLength_FencedCodeExempt(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxLineLength = 40

	long := strings.Repeat("x", 80)
	doc := buildDoc(t, "codey", "codey",
		"---\nname: codey\n---\n\n```\n"+long+"\n```\n\nshort prose\n")

	assert.Empty(t, LineLength{Config: cfg}.Validate(doc))
}

func TestLineLength_ZeroLimitDisables(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxLineLength = 0

	doc := buildDoc(t, "any", "any",
		"---\nname: any\n---\n\n"+strings.Repeat("y", 500)+"\n")

	assert.Empty(t, LineLength{Config: cfg}.Validate(doc))
}
