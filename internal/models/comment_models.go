package models

import "strings"

const commentSeparator = "\n\n"

// CommentSet is an ordered list of comments, each non-empty after trimming.
type CommentSet []string

// NewCommentSet trims every comment and drops the blank ones, keeping order
// and duplicates.
func NewCommentSet(raw []string) CommentSet {
	set := make(CommentSet, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		set = append(set, c)
	}
	return set
}

func (c CommentSet) IsEmpty() bool {
	return len(c) == 0
}

// Joined returns the comments separated by a blank line.
func (c CommentSet) Joined() string {
	return strings.Join(c, commentSeparator)
}
