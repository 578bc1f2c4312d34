package plantname

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedName means genus, specific epithet or subordinate
	// epithet cannot be found.
	ErrMalformedName = errors.New("malformed name")

	// ErrMalformedHybridBracket means the hybrid bracket does not follow
	// the "[parent1 × parent2]" grammar.
	ErrMalformedHybridBracket = errors.New("malformed hybrid bracket")
)

// Grammar rules reported by errors.
const (
	ruleGenus       = "genus"
	ruleSpecific    = "specific epithet"
	ruleSubordinate = "subordinate epithet"
	ruleHybrid      = "hybrid parents"
)

// Error describes a name the parser cannot process. The caller usually
// skips such a record and continues with the next one.
type Error struct {
	// Err is one of the sentinel errors of the package.
	Err error

	// Rule is the grammar rule that did not match.
	Rule string

	// Input is the remainder of the name where the rule failed.
	Input string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: cannot match %s at %q", e.Err, e.Rule, e.Input)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func malformedNameError(rule, input string) error {
	return &Error{Err: ErrMalformedName, Rule: rule, Input: input}
}

func malformedHybridError(input string) error {
	return &Error{Err: ErrMalformedHybridBracket, Rule: ruleHybrid, Input: input}
}
