package phases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillaudit/skillaudit/internal/domain"
)

const cleanSkill = `---
name: clean-skill
description: A perfectly ordinary skill.
---

# Clean Skill

Body content.
`

func TestFrontMatter_EmptyBlockAndMissingBody(t *testing.T) {
	doc := buildDoc(t, "empty", "empty", "---\n---\n")

	issues := FrontMatter{}.Validate(doc)

	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "front matter block is empty")
	assert.Contains(t, issues[1].Message, "no body content")
}

func TestFrontMatter_CleanDocument(t *testing.T) {
	doc := buildDoc(t, "clean-skill", "clean-skill", cleanSkill)

	assert.Empty(t, FrontMatter{}.Validate(doc))
}

func TestRequiredFields_ReportsEachMissingField(t *testing.T) {
	doc := buildDoc(t, "sparse", "sparse", "---\nversion: 1.0.0\n---\n\nBody.\n")

	p := RequiredFields{Config: domain.DefaultConfig()}
	issues := p.Validate(doc)

	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, `"name"`)
	assert.Contains(t, issues[1].Message, `"description"`)
}

func TestRequiredFields_EmptyValueCountsAsMissing(t *testing.T) {
	doc := buildDoc(t, "blank", "blank", "---\nname: blank\ndescription:\n---\n\nBody.\n")

	p := RequiredFields{Config: domain.DefaultConfig()}
	issues := p.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"description"`)
}

func TestUnknownFields_SingleIssueListsAllKeys(t *testing.T) {
	doc := buildDoc(t, "extra", "extra",
		"---\nname: extra\ndescription: d\nauthor: someone\ncolor: blue\n---\n\nBody.\n")

	p := UnknownFields{Config: domain.DefaultConfig()}
	issues := p.Validate(doc)

	require.Len(t, issues, 1)
	assert.Equal(t, domain.Issue{
		Message: "unknown front matter field(s): author, color",
		Context: []string{"author", "color"},
	}, issues[0])
}

func TestUnknownFields_AllAllowed(t *testing.T) {
	doc := buildDoc(t, "clean-skill", "clean-skill", cleanSkill)

	p := UnknownFields{Config: domain.DefaultConfig()}
	assert.Empty(t, p.Validate(doc))
}

func TestDescriptionLength_OverLimit(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.MaxDescriptionLength = 20

	doc := buildDoc(t, "wordy", "wordy",
		"---\nname: wordy\ndescription: "+strings.Repeat("x", 30)+"\n---\n\nBody.\n")

	issues := DescriptionLength{Config: cfg}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "30 characters (max 20)")
}

func TestDescriptionLength_AbsentDescriptionIsNotItsFinding(t *testing.T) {
	doc := buildDoc(t, "nodesc", "nodesc", "---\nname: nodesc\n---\n\nBody.\n")

	issues := DescriptionLength{Config: domain.DefaultConfig()}.Validate(doc)

	assert.Empty(t, issues)
}

func TestToolsField_QualifiersAndUnknownNames(t *testing.T) {
	doc := buildDoc(t, "tools", "tools",
		"---\nname: tools\nallowed-tools: Read, Bash(git:*), Teleport, ,\n---\n\nBody.\n")

	issues := ToolsField{Config: domain.DefaultConfig()}.Validate(doc)

	require.Len(t, issues, 3)
	assert.Contains(t, issues[0].Message, `"Teleport"`)
	assert.Contains(t, issues[1].Message, "empty entry")
	assert.Contains(t, issues[2].Message, "empty entry")
}

func TestToolsField_AbsentIsFine(t *testing.T) {
	doc := buildDoc(t, "clean-skill", "clean-skill", cleanSkill)

	assert.Empty(t, ToolsField{Config: domain.DefaultConfig()}.Validate(doc))
}

func TestVersionField(t *testing.T) {
	tests := []struct {
		version string
		valid   bool
	}{
		{"1.0.0", true},
		{"0.12.3", true},
		{"2.0.0-rc.1", true},
		{"1.0.0+build.5", true},
		{"", true}, // absence is allowed
		{"v1.0.0", false},
		{"1.0", false},
		{"latest", false},
	}

	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			raw := "---\nname: versioned\n"
			if tt.version != "" {
				raw += "version: " + tt.version + "\n"
			}
			raw += "---\n\nBody.\n"
			doc := buildDoc(t, "versioned", "versioned", raw)

			issues := VersionField{}.Validate(doc)
			if tt.valid {
				assert.Empty(t, issues)
			} else {
				require.Len(t, issues, 1)
				assert.Contains(t, issues[0].Message, "not semver")
			}
		})
	}
}
