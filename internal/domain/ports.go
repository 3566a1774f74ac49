package domain

// SkillRef points at one skill file discovered in the corpus.
type SkillRef struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// CorpusScanner discovers skill files under a corpus root, sorted by name.
type CorpusScanner interface {
	Scan(corpusRoot string, excludePaths []string) ([]SkillRef, error)
}

// DocumentParser turns a skill file into a Document.
type DocumentParser interface {
	Parse(path string) (*Document, error)
}

// ConfigLoader reads the corpus configuration.
type ConfigLoader interface {
	Load(corpusRoot string) (AuditConfig, error)
}

// GitInfo exposes version-control metadata about the corpus.
type GitInfo interface {
	IsGitRepo(corpusRoot string) bool
	CommitHash(corpusRoot string) (string, error)
}
