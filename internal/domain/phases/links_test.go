package phases

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillaudit/skillaudit/internal/domain"
)

// diskDoc writes a skill to a real directory so link phases can stat
// relative targets.
func diskDoc(t *testing.T, raw string, extraFiles ...string) *domain.Document {
	t.Helper()

	dir := t.TempDir()
	skillDir := filepath.Join(dir, "disk-skill")
	require.NoError(t, os.MkdirAll(skillDir, 0o755))

	path := filepath.Join(skillDir, "SKILL.md")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	for _, rel := range extraFiles {
		full := filepath.Join(skillDir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("content\n"), 0o644))
	}

	doc := buildDoc(t, "disk-skill", "disk-skill", raw)
	doc.Path = path
	return doc
}

func TestInternalLinks_BrokenAndResolved(t *testing.T) {
	raw := "---\nname: disk-skill\n---\n\nSee [guide](./guide.md) and [missing](./nope.md).\n" +
		"External [site](https://example.com/page) is skipped.\n" +
		"In-page [anchor](#section) is skipped.\n"
	doc := diskDoc(t, raw, "guide.md")

	issues := InternalLinks{}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"./nope.md"`)
}

func TestInternalLinks_AnchoredTargetChecksFileOnly(t *testing.T) {
	raw := "---\nname: disk-skill\n---\n\nSee [guide](./guide.md#setup).\n"
	doc := diskDoc(t, raw, "guide.md")

	assert.Empty(t, InternalLinks{}.Validate(doc))
}

func TestInternalLinks_IgnoresFencedCode(t *testing.T) {
	raw := "---\nname: disk-skill\n---\n\n```md\n[example](./not-real.md)\n```\n\nProse.\n"
	doc := diskDoc(t, raw)

	assert.Empty(t, InternalLinks{}.Validate(doc))
}

func TestExternalLinks_ProbesAndReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	raw := "---\nname: linked\n---\n\n" +
		"[good](" + srv.URL + "/ok) and [bad](" + srv.URL + "/missing).\n"
	doc := buildDoc(t, "linked", "linked", raw)

	p := ExternalLinks{Client: &http.Client{Timeout: 2 * time.Second}}
	issues := p.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, srv.URL+"/missing")
	assert.Contains(t, issues[0].Message, "status 404")
}

func TestExternalLinks_FallsBackToGetWhenHeadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	raw := "---\nname: headless\n---\n\n[page](" + srv.URL + "/page).\n"
	doc := buildDoc(t, "headless", "headless", raw)

	p := ExternalLinks{Client: &http.Client{Timeout: 2 * time.Second}}
	assert.Empty(t, p.Validate(doc))
}

func TestExternalLinks_NilClientSkipsProbing(t *testing.T) {
	raw := "---\nname: offline\n---\n\n[dead](https://definitely-not-a-real-host.invalid/x).\n"
	doc := buildDoc(t, "offline", "offline", raw)

	assert.Empty(t, ExternalLinks{}.Validate(doc))
}

func TestReferencedFiles_BacktickReferences(t *testing.T) {
	raw := "---\nname: disk-skill\n---\n\n" +
		"Run `scripts/deploy.sh` then read `references/api.md`.\n" +
		"Mentions of `scripts/deploy.sh` repeat but report once.\n" +
		"Plain code like `fmt.Println` is not a file reference.\n"
	doc := diskDoc(t, raw, "scripts/deploy.sh")

	issues := ReferencedFiles{}.Validate(doc)

	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `"references/api.md"`)
}

func TestReferencedFiles_AllPresent(t *testing.T) {
	raw := "---\nname: disk-skill\n---\n\nUse `templates/report.md` as a base.\n"
	doc := diskDoc(t, raw, "templates/report.md")

	assert.Empty(t, ReferencedFiles{}.Validate(doc))
}
