package models

// Supported classifier kinds.
const (
	ClassifierLogisticRegression = "logistic_regression"
	ClassifierLinearSVC          = "linear_svc"
	ClassifierMultinomialNB      = "multinomial_nb"
)

// VectorizerArtifact is an exported bag-of-words or tf-idf transformer.
type VectorizerArtifact struct {
	Lowercase  bool           `json:"lowercase" yaml:"lowercase"`
	NgramRange [2]int         `json:"ngram_range" yaml:"ngram_range"`
	Vocabulary map[string]int `json:"vocabulary" yaml:"vocabulary"`
	StopWords  []string       `json:"stop_words,omitempty" yaml:"stop_words,omitempty"`
	// IDF is indexed like the vocabulary columns; empty means raw counts.
	IDF    []float64 `json:"idf,omitempty" yaml:"idf,omitempty"`
	Norm   string    `json:"norm,omitempty" yaml:"norm,omitempty"`
	Binary bool      `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// ClassifierArtifact is an exported binary text classifier.
type ClassifierArtifact struct {
	Kind    string `json:"kind" yaml:"kind"`
	Classes []int  `json:"classes" yaml:"classes"`

	// linear models
	Coef      []float64 `json:"coef,omitempty" yaml:"coef,omitempty"`
	Intercept float64   `json:"intercept,omitempty" yaml:"intercept,omitempty"`

	// multinomial naive bayes, one row per class
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty" yaml:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty" yaml:"feature_log_prob,omitempty"`
}
