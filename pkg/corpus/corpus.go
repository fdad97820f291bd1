package corpus

import (
	"os"
	"path/filepath"
	"strings"
)

// Corpus is a labeled document tree: one subdirectory per label, one document per file
type Corpus struct {
	Root string

	// Extensions restricts which files count as documents (e.g. ".txt").
	// Empty means every regular file.
	Extensions []string
}

// Label is one labeled subdirectory of the corpus
type Label struct {
	Name string
	Dir  string
}

// Document is a single file belonging to a label
type Document struct {
	Label string
	Path  string
}

// New creates a corpus rooted at root
func New(root string, extensions ...string) *Corpus {
	return &Corpus{Root: root, Extensions: extensions}
}

// Labels lists the label subdirectories of the root in name order.
// Plain files directly under the root are not labels and are ignored.
func (c *Corpus) Labels() ([]Label, error) {
	entries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, &FileError{Op: "list", Path: c.Root, Err: err}
	}

	var labels []Label
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		labels = append(labels, Label{
			Name: entry.Name(),
			Dir:  filepath.Join(c.Root, entry.Name()),
		})
	}

	return labels, nil
}

// Documents lists the files of one label in name order. Nested directories are skipped.
func (c *Corpus) Documents(label Label) ([]Document, error) {
	entries, err := os.ReadDir(label.Dir)
	if err != nil {
		return nil, &FileError{Op: "list", Path: label.Dir, Err: err}
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !c.accepts(entry.Name()) {
			continue
		}
		docs = append(docs, Document{
			Label: label.Name,
			Path:  filepath.Join(label.Dir, entry.Name()),
		})
	}

	return docs, nil
}

// Walk lists every document of every label, labels first then files, both in name order
func (c *Corpus) Walk() ([]Document, error) {
	labels, err := c.Labels()
	if err != nil {
		return nil, err
	}

	var all []Document
	for _, label := range labels {
		docs, err := c.Documents(label)
		if err != nil {
			return nil, err
		}
		all = append(all, docs...)
	}

	return all, nil
}

func (c *Corpus) accepts(name string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range c.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
