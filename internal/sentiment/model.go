package sentiment

import (
	"fmt"
	"math"

	"github.com/spacesedan/commentsense/internal/models"
)

// model returns the predicted class and the score that decided it.
type model interface {
	predict(features map[int]float64) (class int, score float64)
}

func newModel(a models.ClassifierArtifact, dim int) (model, error) {
	if len(a.Classes) != 2 {
		return nil, fmt.Errorf("binary classifier needs 2 classes, got %d", len(a.Classes))
	}

	switch a.Kind {
	case models.ClassifierLogisticRegression, models.ClassifierLinearSVC:
		if len(a.Coef) != dim {
			return nil, fmt.Errorf("coef has %d weights, vectorizer has %d features", len(a.Coef), dim)
		}
		return &linearModel{coef: a.Coef, intercept: a.Intercept, classes: a.Classes}, nil

	case models.ClassifierMultinomialNB:
		if len(a.ClassLogPrior) != len(a.Classes) || len(a.FeatureLogProb) != len(a.Classes) {
			return nil, fmt.Errorf("naive bayes needs a prior and a feature row per class")
		}
		for c, row := range a.FeatureLogProb {
			if len(row) != dim {
				return nil, fmt.Errorf("feature_log_prob row %d has %d entries, vectorizer has %d features", c, len(row), dim)
			}
		}
		return &naiveBayesModel{prior: a.ClassLogPrior, logProb: a.FeatureLogProb, classes: a.Classes}, nil

	default:
		return nil, fmt.Errorf("unsupported classifier kind %q", a.Kind)
	}
}

// linearModel covers logistic regression and linear SVMs; both decide on
// the sign of the same affine function.
type linearModel struct {
	coef      []float64
	intercept float64
	classes   []int
}

func (m *linearModel) predict(features map[int]float64) (int, float64) {
	score := m.intercept
	for idx, x := range features {
		score += m.coef[idx] * x
	}
	if score > 0 {
		return m.classes[1], score
	}
	return m.classes[0], score
}

type naiveBayesModel struct {
	prior   []float64
	logProb [][]float64
	classes []int
}

func (m *naiveBayesModel) predict(features map[int]float64) (int, float64) {
	best, bestScore := 0, math.Inf(-1)
	for c := range m.classes {
		score := m.prior[c]
		for idx, x := range features {
			score += x * m.logProb[c][idx]
		}
		if c == 0 || score > bestScore {
			best, bestScore = c, score
		}
	}
	return m.classes[best], bestScore
}
