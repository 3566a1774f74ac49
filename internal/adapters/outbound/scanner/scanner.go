package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// SkillFileName is the canonical file name of a skill definition.
const SkillFileName = "SKILL.md"

var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"bin":          true,
}

// CorpusScanner implements domain.CorpusScanner by walking the filesystem.
type CorpusScanner struct{}

func New() *CorpusScanner {
	return &CorpusScanner{}
}

// Scan finds every SKILL.md under corpusRoot and returns refs sorted by
// skill name. Filesystem iteration order never leaks into results, so
// repeated audits of an unchanged corpus are byte-identical.
func (s *CorpusScanner) Scan(corpusRoot string, excludePaths []string) ([]domain.SkillRef, error) {
	absRoot, err := filepath.Abs(corpusRoot)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("corpus root %s: %w", corpusRoot, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("corpus root %s is not a directory", corpusRoot)
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var refs []domain.SkillRef
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			relPath, _ := filepath.Rel(absRoot, path)
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[filepath.ToSlash(relPath)] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == SkillFileName {
			refs = append(refs, domain.SkillRef{
				Name: filepath.Base(filepath.Dir(path)),
				Path: path,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].Path < refs[j].Path
	})

	return refs, nil
}
