package summarizer

import "fmt"

type Mode int

const (
	ModeComments Mode = iota
	ModeSpeech
)

const (
	commentsPrompt = "Summarize the following comments in 2-3 sentences, capturing the main sentiment and key points:\n\n%s"
	speechPrompt   = "Summarize the following speech in 1-2 sentences, using as few words as possible (max 20 words):\n\n%s"
)

// BuildPrompt embeds text in the instruction for mode.
func BuildPrompt(mode Mode, text string) string {
	if mode == ModeSpeech {
		return fmt.Sprintf(speechPrompt, text)
	}
	return fmt.Sprintf(commentsPrompt, text)
}

func (m Mode) String() string {
	if m == ModeSpeech {
		return "speech"
	}
	return "comments"
}
