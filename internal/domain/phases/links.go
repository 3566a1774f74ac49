package phases

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// InternalLinks (phase 4) checks that relative markdown links resolve to
// files on disk, relative to the skill's directory.
type InternalLinks struct{}

func (InternalLinks) Number() int      { return 4 }
func (InternalLinks) Name() string     { return "internal-links" }
func (InternalLinks) Severity() string { return domain.SeverityWarning }
func (InternalLinks) Advice() string {
	return "fix the link target or remove the dead link"
}

func (InternalLinks) Validate(doc *domain.Document) []domain.Issue {
	mask := fenceMask(doc.Body)
	dir := filepath.Dir(doc.Path)

	var issues []domain.Issue
	for i, line := range doc.Body {
		if mask[i] {
			continue
		}
		for _, target := range linkTargets(line) {
			if isExternalLink(target) {
				continue
			}
			resolved := filepath.Join(dir, filepath.FromSlash(target))
			if _, err := os.Stat(resolved); err != nil {
				issues = append(issues, domain.Issue{
					Message: fmt.Sprintf("broken internal link %q", target),
					Context: []string{truncate(line, 80)},
				})
			}
		}
	}
	return issues
}

// ExternalLinks (phase 5) probes outbound http(s) links. Unreachable links
// degrade to warnings; the client timeout bounds every probe so a dead host
// can never hang the audit. A nil client skips probing entirely.
type ExternalLinks struct {
	Client *http.Client
}

func (ExternalLinks) Number() int      { return 5 }
func (ExternalLinks) Name() string     { return "external-links" }
func (ExternalLinks) Severity() string { return domain.SeverityWarning }
func (ExternalLinks) Advice() string {
	return "update or drop the unreachable link"
}

func (p ExternalLinks) Validate(doc *domain.Document) []domain.Issue {
	if p.Client == nil {
		return nil
	}

	mask := fenceMask(doc.Body)
	seen := make(map[string]bool)
	for i, line := range doc.Body {
		if mask[i] {
			continue
		}
		for _, target := range linkTargets(line) {
			if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
				seen[target] = true
			}
		}
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	var issues []domain.Issue
	for _, u := range urls {
		if err := p.probe(u); err != nil {
			issues = append(issues, domain.Issue{
				Message: fmt.Sprintf("link %s unreachable: %v", u, err),
				Context: []string{u},
			})
		}
	}
	return issues
}

func (p ExternalLinks) probe(url string) error {
	resp, err := p.Client.Head(url)
	if err != nil || resp.StatusCode == http.StatusMethodNotAllowed {
		// Some hosts reject HEAD; retry with GET before reporting.
		resp, err = p.Client.Get(url)
	}
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

var refDirs = []string{"scripts/", "templates/", "references/", "assets/", "examples/"}

var backtickRefRe = regexp.MustCompile("`([A-Za-z0-9_./-]+)`")

// ReferencedFiles (phase 21) checks that local files mentioned in backticks
// under the skill's conventional subdirectories actually exist.
type ReferencedFiles struct{}

func (ReferencedFiles) Number() int      { return 21 }
func (ReferencedFiles) Name() string     { return "referenced-files" }
func (ReferencedFiles) Severity() string { return domain.SeverityWarning }
func (ReferencedFiles) Advice() string {
	return "ship the referenced file with the skill or correct the path"
}

func (ReferencedFiles) Validate(doc *domain.Document) []domain.Issue {
	mask := fenceMask(doc.Body)
	dir := filepath.Dir(doc.Path)
	reported := make(map[string]bool)

	var issues []domain.Issue
	for i, line := range doc.Body {
		if mask[i] {
			continue
		}
		for _, m := range backtickRefRe.FindAllStringSubmatch(line, -1) {
			ref := m[1]
			if !hasRefPrefix(ref) || reported[ref] {
				continue
			}
			resolved := filepath.Join(dir, filepath.FromSlash(ref))
			if _, err := os.Stat(resolved); err != nil {
				reported[ref] = true
				issues = append(issues, domain.Issue{
					Message: fmt.Sprintf("referenced file %q does not exist", ref),
					Context: []string{truncate(line, 80)},
				})
			}
		}
	}
	return issues
}

func hasRefPrefix(ref string) bool {
	for _, prefix := range refDirs {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}
