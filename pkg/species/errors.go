package species

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewTokens means the name does not have genus and specific
	// epithet.
	ErrTooFewTokens = errors.New("too few tokens")

	// ErrMissingHybridEpithet means a hybrid marker was found without the
	// specific epithet after it.
	ErrMissingHybridEpithet = errors.New("missing hybrid epithet")
)

// Error describes a name that cannot be normalized.
type Error struct {
	// Err is one of the sentinel errors of the package.
	Err error

	// Input is the name that failed.
	Input string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot normalize %q: %s", e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func tooFewTokensError(input string) error {
	return &Error{Err: ErrTooFewTokens, Input: input}
}

func missingHybridEpithetError(input string) error {
	return &Error{Err: ErrMissingHybridEpithet, Input: input}
}
