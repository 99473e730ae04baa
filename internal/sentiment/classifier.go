// Package sentiment labels text as positive or negative, either from a
// pretrained classifier artifact or from the VADER lexicon.
package sentiment

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/spacesedan/commentsense/config"
	"github.com/spacesedan/commentsense/internal/models"
)

var (
	ErrArtifactLoad = errors.New("failed to load sentiment artifact")
	ErrInference    = errors.New("sentiment inference failed")
)

type Classifier interface {
	Predict(text string) (models.Label, error)
}

type Loader interface {
	Load() (Classifier, error)
}

// NewLoader picks the backend named in cfg.
func NewLoader(cfg config.SentimentConfig) (Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend == config.BackendVader {
		return VaderLoader{}, nil
	}
	return ArtifactLoader{ModelPath: cfg.ModelPath, VectorizerPath: cfg.VectorizerPath}, nil
}

// ArtifactLoader reads a classifier and its paired vectorizer from disk.
// The format of each file follows its extension.
type ArtifactLoader struct {
	ModelPath      string
	VectorizerPath string
}

func (l ArtifactLoader) Load() (Classifier, error) {
	var va models.VectorizerArtifact
	if err := decodeArtifact(l.VectorizerPath, &va); err != nil {
		return nil, err
	}
	vectorizer, err := NewVectorizer(va)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, l.VectorizerPath, err)
	}

	var ca models.ClassifierArtifact
	if err := decodeArtifact(l.ModelPath, &ca); err != nil {
		return nil, err
	}
	m, err := newModel(ca, vectorizer.Dim())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArtifactLoad, l.ModelPath, err)
	}

	slog.Debug("[Sentiment] Artifacts loaded",
		slog.String("kind", ca.Kind),
		slog.Int("features", vectorizer.Dim()),
		slog.String("model", l.ModelPath),
		slog.String("vectorizer", l.VectorizerPath))

	return &ArtifactClassifier{vectorizer: vectorizer, model: m}, nil
}

type ArtifactClassifier struct {
	vectorizer *Vectorizer
	model      model
}

func (c *ArtifactClassifier) Predict(text string) (models.Label, error) {
	features := c.vectorizer.Transform(text)
	class, score := c.model.predict(features)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return "", fmt.Errorf("%w: non-finite decision score %v", ErrInference, score)
	}
	return models.LabelFromClass(class), nil
}
