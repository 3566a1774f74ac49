package phases

import (
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
)

var (
	kebabRe    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	mdLinkRe   = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)`)
	fenceRe    = regexp.MustCompile("^(```|~~~)")
	splitWords = regexp.MustCompile(`[\s_\-]+`)
)

// isKebabCase reports whether s is lower-kebab-case.
func isKebabCase(s string) bool {
	return kebabRe.MatchString(s)
}

// toKebabCase converts a name of any convention (camelCase, snake_case,
// spaced) into kebab-case.
func toKebabCase(s string) string {
	var parts []string
	for _, chunk := range splitWords.Split(s, -1) {
		for _, word := range camelcase.Split(chunk) {
			word = strings.ToLower(strings.TrimSpace(word))
			if word != "" {
				parts = append(parts, word)
			}
		}
	}
	return strings.Join(parts, "-")
}

// fenceMask marks which body lines sit inside a fenced code block,
// including the fence delimiters themselves.
func fenceMask(lines []string) []bool {
	mask := make([]bool, len(lines))
	inFence := false
	for i, line := range lines {
		if fenceRe.MatchString(strings.TrimSpace(line)) {
			mask[i] = true
			inFence = !inFence
			continue
		}
		mask[i] = inFence
	}
	return mask
}

// linkTargets extracts markdown link targets from a line, anchors stripped.
func linkTargets(line string) []string {
	var targets []string
	for _, m := range mdLinkRe.FindAllStringSubmatch(line, -1) {
		target := m[1]
		if i := strings.Index(target, "#"); i == 0 {
			continue // pure in-page anchor
		} else if i > 0 {
			target = target[:i]
		}
		if target != "" {
			targets = append(targets, target)
		}
	}
	return targets
}

// isExternalLink reports whether a link target leaves the corpus.
func isExternalLink(target string) bool {
	return strings.HasPrefix(target, "http://") ||
		strings.HasPrefix(target, "https://") ||
		strings.HasPrefix(target, "mailto:")
}

// truncate shortens s for use in issue context lines.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
