package grader

import "strings"

const (
	// FullScore is awarded when the submitted answer matches the canonical one.
	FullScore = 100
	NoScore   = 0
)

// Grader grades a student's answer against the canonical answer.
// Implementations may normalize differently or return canned results (for tests).
type Grader interface {
	// Grade returns a score between NoScore and FullScore.
	Grade(expected, given string) int
}

// ExactMatch awards FullScore when both answers are equal after trimming
// surrounding whitespace and ignoring case.
type ExactMatch struct{}

// Compile-time check: ExactMatch satisfies the Grader interface.
var _ Grader = ExactMatch{}

func (ExactMatch) Grade(expected, given string) int {
	if Normalize(expected) == Normalize(given) {
		return FullScore
	}
	return NoScore
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
