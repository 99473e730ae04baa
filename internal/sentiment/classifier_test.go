package sentiment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/models"
)

func loadClassifier(t *testing.T, modelPath, vectorizerPath string) Classifier {
	t.Helper()
	c, err := ArtifactLoader{
		ModelPath:      filepath.Join("testdata", modelPath),
		VectorizerPath: filepath.Join("testdata", vectorizerPath),
	}.Load()
	if err != nil {
		t.Fatalf("load %s: %v", modelPath, err)
	}
	return c
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestArtifactClassifierPredict(t *testing.T) {
	artifacts := []struct {
		model      string
		vectorizer string
	}{
		{"linear_model.json", "vectorizer.json"},
		{"linear_model.yaml", "vectorizer.yaml"},
		{"svc_model.yml", "vectorizer.json"},
		{"nb_model.json", "vectorizer.yaml"},
	}
	inputs := []struct {
		text string
		want models.Label
	}{
		{readFixture(t, "positive.txt"), models.LabelPositive},
		{readFixture(t, "negative.txt"), models.LabelNegative},
		{"GREAT!!! Love LOVE love", models.LabelPositive},
		{"this is not good", models.LabelNegative},
		{"bad, bad and terrible", models.LabelNegative},
	}

	for _, a := range artifacts {
		c := loadClassifier(t, a.model, a.vectorizer)
		for _, in := range inputs {
			t.Run(a.model+"/"+in.text, func(t *testing.T) {
				got, err := c.Predict(in.text)
				if err != nil {
					t.Fatalf("predict: %v", err)
				}
				assert.Equal(t, got, in.want)
			})
		}
	}
}

func TestJSONAndYAMLArtifactsAgree(t *testing.T) {
	fromJSON := loadClassifier(t, "linear_model.json", "vectorizer.json")
	fromYAML := loadClassifier(t, "linear_model.yaml", "vectorizer.yaml")

	for _, text := range []string{"", "good", "not good", "meh", "love and hate", "terrible but great"} {
		a, errA := fromJSON.Predict(text)
		b, errB := fromYAML.Predict(text)
		if errA != nil || errB != nil {
			t.Fatalf("predict %q: %v, %v", text, errA, errB)
		}
		assert.Equal(t, a, b)
	}
}

func TestArtifactLoaderErrors(t *testing.T) {
	tests := []struct {
		name       string
		model      string
		vectorizer string
	}{
		{"missing model", "nope.json", "vectorizer.json"},
		{"missing vectorizer", "linear_model.json", "nope.json"},
		{"coef shorter than vocabulary", "short_coef_model.json", "vectorizer.json"},
		{"unsupported extension", "model.txt", "vectorizer.json"},
		{"model passed as vectorizer", "linear_model.json", "linear_model.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ArtifactLoader{
				ModelPath:      filepath.Join("testdata", tt.model),
				VectorizerPath: filepath.Join("testdata", tt.vectorizer),
			}.Load()
			if !errors.Is(err, ErrArtifactLoad) {
				t.Fatalf("expected ErrArtifactLoad, got %v", err)
			}
		})
	}
}

func TestPredictNonFiniteScore(t *testing.T) {
	c := loadClassifier(t, "nan_model.yaml", "vectorizer.yaml")

	_, err := c.Predict("good")
	if !errors.Is(err, ErrInference) {
		t.Fatalf("expected ErrInference, got %v", err)
	}

	// columns that do not fire keep the score finite
	got, err := c.Predict("great")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, got, models.LabelPositive)
}

func TestNewModelRejects(t *testing.T) {
	tests := []struct {
		name     string
		artifact models.ClassifierArtifact
	}{
		{"one class", models.ClassifierArtifact{Kind: models.ClassifierLinearSVC, Classes: []int{1}, Coef: []float64{1, 1}}},
		{"unknown kind", models.ClassifierArtifact{Kind: "random_forest", Classes: []int{0, 1}}},
		{"nb prior missing", models.ClassifierArtifact{
			Kind:           models.ClassifierMultinomialNB,
			Classes:        []int{0, 1},
			FeatureLogProb: [][]float64{{-1, -1}, {-1, -1}},
		}},
		{"nb ragged rows", models.ClassifierArtifact{
			Kind:           models.ClassifierMultinomialNB,
			Classes:        []int{0, 1},
			ClassLogPrior:  []float64{-0.7, -0.7},
			FeatureLogProb: [][]float64{{-1, -1}, {-1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newModel(tt.artifact, 2); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestNewLoader(t *testing.T) {
	l, err := NewLoader(config.SentimentConfig{Backend: config.BackendVader})
	if err != nil {
		t.Fatal(err)
	}
	_, isVader := l.(VaderLoader)
	assert.Equal(t, isVader, true)

	l, err = NewLoader(config.SentimentConfig{
		Backend:        config.BackendArtifact,
		ModelPath:      "m.json",
		VectorizerPath: "v.json",
	})
	if err != nil {
		t.Fatal(err)
	}
	al, ok := l.(ArtifactLoader)
	assert.Equal(t, ok, true)
	assert.Equal(t, al.ModelPath, "m.json")
	assert.Equal(t, al.VectorizerPath, "v.json")

	_, err = NewLoader(config.SentimentConfig{Backend: "bert"})
	if !errors.Is(err, config.ErrConfig) {
		t.Fatalf("expected ErrConfig, got %v", err)
	}
}

func TestBundledArtifacts(t *testing.T) {
	c, err := ArtifactLoader{
		ModelPath:      filepath.Join("..", "..", "ai_model", "sentiment_model.json"),
		VectorizerPath: filepath.Join("..", "..", "ai_model", "vectorizer.json"),
	}.Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		text string
		want models.Label
	}{
		{"Excellent support, I would recommend it to anyone.", models.LabelPositive},
		{"Awful app. Broken after the update and useless now.", models.LabelNegative},
		{"Not good, the worst release so far.", models.LabelNegative},
	}

	for _, tt := range tests {
		got, err := c.Predict(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, got, tt.want)
	}
}
