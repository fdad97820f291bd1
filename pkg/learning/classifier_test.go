package learning

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func trainScenario(t *testing.T, opts ...Option) *Model {
	t.Helper()
	model, err := Train(context.Background(), scenarioCorpus(t), 1, opts...)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	return model
}

func TestClassifyScenario(t *testing.T) {
	model := trainScenario(t)
	path := writeDoc(t, filepath.Join(t.TempDir(), "new.txt"), "a")

	result, err := Classify(model, path)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if result.Label != "2020" {
		t.Errorf("predicted %s, expected 2020", result.Label)
	}
	if result.Scores["2020"] <= result.Scores["2016"] {
		t.Errorf("scores = %v, expected 2020 to score higher", result.Scores)
	}

	want2020 := (math.Log(2) - math.Log(4)) + (math.Log(3) - math.Log(7))
	want2016 := (math.Log(2) - math.Log(4)) + (math.Log(1) - math.Log(6))
	if !approxEqual(result.Scores["2020"], want2020) || !approxEqual(result.Scores["2016"], want2016) {
		t.Errorf("scores = %v, expected 2020=%v 2016=%v", result.Scores, want2020, want2016)
	}
	if result.Tokens != 1 {
		t.Errorf("tokens = %d, expected 1", result.Tokens)
	}
}

func TestClassifyCountsEveryOccurrence(t *testing.T) {
	model := trainScenario(t)
	once := writeDoc(t, filepath.Join(t.TempDir(), "once.txt"), "c")
	thrice := writeDoc(t, filepath.Join(t.TempDir(), "thrice.txt"), "c", "c", "c")

	r1, err := model.Classify(once)
	if err != nil {
		t.Fatal(err)
	}
	r3, err := model.Classify(thrice)
	if err != nil {
		t.Fatal(err)
	}

	for _, label := range model.Labels() {
		prior, _ := model.LogPrior(label)
		p, _ := model.LogLikelihood(label, Word("c"))
		if !approxEqual(r1.Scores[label], prior+p) {
			t.Errorf("%s: single occurrence score %v", label, r1.Scores[label])
		}
		if !approxEqual(r3.Scores[label], prior+3*p) {
			t.Errorf("%s: three occurrences should add 3x the log probability", label)
		}
	}
	if r3.Label != "2016" {
		t.Errorf("predicted %s, expected 2016", r3.Label)
	}
}

func TestClassifyTieGoesToLaterLabel(t *testing.T) {
	// equal priors and an empty document give identical scores
	empty := writeDoc(t, filepath.Join(t.TempDir(), "empty.txt"))

	model := trainScenario(t)
	result, err := model.Classify(empty)
	if err != nil {
		t.Fatal(err)
	}
	if result.Scores["2016"] != result.Scores["2020"] {
		t.Fatalf("expected a tie, got %v", result.Scores)
	}
	if result.Label != "2020" {
		t.Errorf("tie predicted %s, expected 2020", result.Label)
	}

	reversed := trainScenario(t, WithLabels("2020", "2016"))
	result, err = reversed.Classify(empty)
	if err != nil {
		t.Fatal(err)
	}
	if result.Label != "2016" {
		t.Errorf("tie with reversed order predicted %s, expected 2016", result.Label)
	}
}

func TestClassifySentinelOnlyModel(t *testing.T) {
	root := writeCorpus(t, map[string]map[string][]string{
		"2016": {"d1": {"a"}},
		"2020": {"d1": {"b"}, "d2": {"c"}},
	})
	model, err := Train(context.Background(), root, 50)
	if err != nil {
		t.Fatal(err)
	}

	path := writeDoc(t, filepath.Join(t.TempDir(), "doc.txt"), "a", "a", "q")
	result, err := model.Classify(path)
	if err != nil {
		t.Fatal(err)
	}

	// only the priors differ: 2020 has more documents
	if result.Label != "2020" {
		t.Errorf("predicted %s, expected the label with the larger prior", result.Label)
	}
	for _, label := range model.Labels() {
		prior, _ := model.LogPrior(label)
		oov, _ := model.LogLikelihood(label, OutOfVocabulary)
		if !approxEqual(result.Scores[label], prior+3*oov) {
			t.Errorf("%s: score %v, expected prior + 3*oov", label, result.Scores[label])
		}
	}
}

func TestClassifyDoesNotMutateModel(t *testing.T) {
	model := trainScenario(t)
	before := model.Info()

	path := writeDoc(t, filepath.Join(t.TempDir(), "doc.txt"), "a", "new", "words")
	if _, err := model.Classify(path); err != nil {
		t.Fatal(err)
	}

	after := model.Info()
	if after.VocabularySize != before.VocabularySize || after.TotalDocuments != before.TotalDocuments {
		t.Error("classification changed the model")
	}
	if len(model.logLikelihood["2020"]) != model.Vocabulary().Len()+1 {
		t.Error("classification added conditional entries")
	}
}

func TestClassifyMissingFile(t *testing.T) {
	model := trainScenario(t)

	_, err := model.Classify(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrTargetFileUnreadable) {
		t.Errorf("expected ErrTargetFileUnreadable, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestEvaluate(t *testing.T) {
	train := writeCorpus(t, map[string]map[string][]string{
		"2016": {"d1": {"clinton", "email", "debate"}, "d2": {"clinton", "rally"}},
		"2020": {"d1": {"covid", "mask", "biden"}, "d2": {"covid", "zoom"}},
	})
	test := writeCorpus(t, map[string]map[string][]string{
		"2016": {"t1": {"clinton", "clinton"}, "t2": {"covid", "covid", "mask"}},
		"2020": {"t1": {"covid", "biden"}},
	})

	model, err := Train(context.Background(), train, 1)
	if err != nil {
		t.Fatal(err)
	}

	eval, err := Evaluate(model, test)
	if err != nil {
		t.Fatal(err)
	}

	if eval.Total != 3 || eval.Correct != 2 {
		t.Errorf("total/correct = %d/%d, expected 3/2", eval.Total, eval.Correct)
	}
	if !approxEqual(eval.Accuracy(), 2.0/3.0) {
		t.Errorf("accuracy = %v", eval.Accuracy())
	}
	if eval.Confusion["2016"]["2020"] != 1 || eval.Confusion["2016"]["2016"] != 1 {
		t.Errorf("confusion = %v", eval.Confusion)
	}
}

func TestEvaluationAccuracyEmpty(t *testing.T) {
	if (&Evaluation{}).Accuracy() != 0 {
		t.Error("empty evaluation should have zero accuracy")
	}
}

func TestTopWordsAndStats(t *testing.T) {
	root := writeCorpus(t, map[string]map[string][]string{
		"2016": {"d1": {"clinton", "clinton", "clinton", "vote"}},
		"2020": {"d1": {"covid", "covid", "covid", "vote"}},
	})
	model, err := Train(context.Background(), root, 1)
	if err != nil {
		t.Fatal(err)
	}

	top, err := model.TopWords("2020", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Word != "covid" {
		t.Errorf("top 2020 word = %+v, expected covid", top)
	}

	if _, err := model.TopWords("1999", 1); !errors.Is(err, ErrUnknownLabel) {
		t.Errorf("expected ErrUnknownLabel, got %v", err)
	}

	var buf bytes.Buffer
	model.PrintStats(&buf, 3)
	out := buf.String()
	for _, want := range []string{"Vocabulary size: 3", "Top 2016 Words", "clinton", "covid"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
