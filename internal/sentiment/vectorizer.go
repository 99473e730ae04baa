package sentiment

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/spacesedan/commentsense/internal/models"
)

// Words of two or more letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer maps text onto the sparse feature space of a trained model.
type Vectorizer struct {
	lowercase  bool
	minN, maxN int
	vocabulary map[string]int
	stopWords  map[string]struct{}
	idf        []float64
	l2         bool
	binary     bool
}

func NewVectorizer(a models.VectorizerArtifact) (*Vectorizer, error) {
	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	for term, idx := range a.Vocabulary {
		if idx < 0 || idx >= len(a.Vocabulary) {
			return nil, fmt.Errorf("vocabulary index %d for %q out of range [0,%d)", idx, term, len(a.Vocabulary))
		}
	}

	minN, maxN := a.NgramRange[0], a.NgramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("invalid ngram range [%d, %d]", a.NgramRange[0], a.NgramRange[1])
	}

	if len(a.IDF) != 0 && len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("idf has %d weights, vocabulary has %d terms", len(a.IDF), len(a.Vocabulary))
	}

	var l2 bool
	switch a.Norm {
	case "", "none":
	case "l2":
		l2 = true
	default:
		return nil, fmt.Errorf("unsupported norm %q", a.Norm)
	}

	stop := make(map[string]struct{}, len(a.StopWords))
	for _, w := range a.StopWords {
		if a.Lowercase {
			w = strings.ToLower(w)
		}
		stop[w] = struct{}{}
	}

	return &Vectorizer{
		lowercase:  a.Lowercase,
		minN:       minN,
		maxN:       maxN,
		vocabulary: a.Vocabulary,
		stopWords:  stop,
		idf:        a.IDF,
		l2:         l2,
		binary:     a.Binary,
	}, nil
}

// Dim is the number of feature columns.
func (v *Vectorizer) Dim() int {
	return len(v.vocabulary)
}

// Transform returns the non-zero features of text keyed by column.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	features := make(map[int]float64)
	for _, term := range v.terms(text) {
		idx, ok := v.vocabulary[term]
		if !ok {
			continue
		}
		if v.binary {
			features[idx] = 1
		} else {
			features[idx]++
		}
	}

	if len(v.idf) > 0 {
		for idx := range features {
			features[idx] *= v.idf[idx]
		}
	}

	if v.l2 {
		var sum float64
		for _, x := range features {
			sum += x * x
		}
		if norm := math.Sqrt(sum); norm > 0 {
			for idx := range features {
				features[idx] /= norm
			}
		}
	}
	return features
}

func (v *Vectorizer) terms(text string) []string {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	var tokens []string
	for _, tok := range tokenPattern.FindAllString(text, -1) {
		if _, stop := v.stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	var terms []string
	for n := v.minN; n <= v.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
