package models

type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
)

// positiveClass is the class value a trained model emits for positive text.
const positiveClass = 1

func LabelFromClass(class int) Label {
	if class == positiveClass {
		return LabelPositive
	}
	return LabelNegative
}

func (l Label) String() string {
	return string(l)
}
