package learning

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/zpam/year-classifier/pkg/corpus"
)

func TestEncodeBagOfWords(t *testing.T) {
	vocab := NewVocabulary([]string{"a", "b", "c"})
	path := writeDoc(t, filepath.Join(t.TempDir(), "doc.txt"), "a", "x", "a", "y", "b", "x")

	bag, err := EncodeBagOfWords(vocab, path)
	if err != nil {
		t.Fatalf("EncodeBagOfWords failed: %v", err)
	}

	expected := BagOfWords{Word("a"): 2, Word("b"): 1, OutOfVocabulary: 3}
	if len(bag) != len(expected) {
		t.Fatalf("bag = %v, expected %v", bag, expected)
	}
	for token, n := range expected {
		if bag[token] != n {
			t.Errorf("bag[%s] = %d, expected %d", token, bag[token], n)
		}
	}
	if _, ok := bag[Word("c")]; ok {
		t.Error("unseen vocabulary word should have no entry")
	}
}

func TestEncodeBagOfWordsTotalMatchesTokensRead(t *testing.T) {
	vocab := NewVocabulary([]string{"the", "vote"})
	testCases := [][]string{
		{},
		{"the"},
		{"unknown"},
		{"the", "the", "vote", "mask", "zoom", ""},
	}

	for i, tokens := range testCases {
		path := writeDoc(t, filepath.Join(t.TempDir(), "doc.txt"), tokens...)
		bag, err := EncodeBagOfWords(vocab, path)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}

		read, err := corpus.ReadTokens(path)
		if err != nil {
			t.Fatal(err)
		}
		if bag.Total() != len(read) {
			t.Errorf("case %d: total %d, tokens read %d", i, bag.Total(), len(read))
		}
	}
}

func TestEncodeBagOfWordsOutOfVocabularyOnly(t *testing.T) {
	vocab := NewVocabulary([]string{"a"})
	path := writeDoc(t, filepath.Join(t.TempDir(), "doc.txt"), "zzz")

	bag, err := EncodeBagOfWords(vocab, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(bag) != 1 || bag[OutOfVocabulary] != 1 {
		t.Errorf("expected only the out-of-vocabulary bucket, got %v", bag)
	}
	if _, ok := bag[Word("zzz")]; ok {
		t.Error("out-of-vocabulary word must not create its own key")
	}
}

func TestEncodeBagOfWordsTrimsWhitespace(t *testing.T) {
	vocab := NewVocabulary([]string{"a"})
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeDoc(t, path, "  a\t", "a\r")

	bag, err := EncodeBagOfWords(vocab, path)
	if err != nil {
		t.Fatal(err)
	}
	if bag[Word("a")] != 2 {
		t.Errorf("expected trimmed lines to match vocabulary, got %v", bag)
	}
}

func TestEncodeBagOfWordsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := EncodeBagOfWords(NewVocabulary(nil), path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrTargetFileUnreadable) {
		t.Errorf("expected ErrTargetFileUnreadable, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected the not-found cause to be preserved, got %v", err)
	}
}

func BenchmarkEncodeBagOfWords(b *testing.B) {
	dir := b.TempDir()
	words := []string{"campaign", "election", "virus", "mask", "debate", "vote", "zoom", "poll"}
	var tokens []string
	for i := 0; i < 5000; i++ {
		tokens = append(tokens, words[i%len(words)])
	}

	path := filepath.Join(dir, "doc.txt")
	writeDoc(b, path, tokens...)
	vocab := NewVocabulary(words[:5])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeBagOfWords(vocab, path); err != nil {
			b.Fatal(err)
		}
	}
}
