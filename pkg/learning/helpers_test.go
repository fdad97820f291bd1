package learning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCorpus lays out root/<label>/<file> with one token per line
func writeCorpus(t *testing.T, docs map[string]map[string][]string) string {
	t.Helper()

	root := t.TempDir()
	for label, files := range docs {
		dir := filepath.Join(root, label)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		for name, tokens := range files {
			writeDoc(t, filepath.Join(dir, name), tokens...)
		}
	}
	return root
}

// writeDoc writes a single document and returns its path
func writeDoc(t testing.TB, path string, tokens ...string) string {
	t.Helper()

	content := ""
	if len(tokens) > 0 {
		content = strings.Join(tokens, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// scenarioCorpus is the two-document corpus used across the model tests
func scenarioCorpus(t *testing.T) string {
	return writeCorpus(t, map[string]map[string][]string{
		"2020": {"doc1.txt": {"a", "b", "a"}},
		"2016": {"doc1.txt": {"b", "c"}},
	})
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
