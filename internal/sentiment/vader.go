package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/commentsense/internal/models"
)

var (
	linkPattern    = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown and collapses it to a single line
// of plain words. HTML tags emitted by the renderer are stripped.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := html.UnescapeString(htmlTagPattern.ReplaceAllString(string(output), " "))
	plainText = RemoveLinks(plainText)

	return strings.Join(strings.Fields(plainText), " ")
}

// VaderClassifier scores text with the VADER lexicon. It needs no artifacts.
type VaderClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score in [-1, 1].
func (v *VaderClassifier) Score(text string) float64 {
	return v.analyzer.PolarityScores(ConvertMarkdownToText(text)).Compound
}

func (v *VaderClassifier) Predict(text string) (models.Label, error) {
	if v.Score(text) < 0 {
		return models.LabelNegative, nil
	}
	return models.LabelPositive, nil
}

type VaderLoader struct{}

func (VaderLoader) Load() (Classifier, error) {
	return NewVaderClassifier(), nil
}
