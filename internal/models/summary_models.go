package models

// SummarySource records where a summary came from. It is only used for
// diagnostics; callers receive the plain string.
type SummarySource string

const (
	SummarySourceRemote   SummarySource = "remote"
	SummarySourceFallback SummarySource = "fallback"
	SummarySourceEmpty    SummarySource = "empty"
)
