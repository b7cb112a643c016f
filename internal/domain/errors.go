package domain

import "errors"

var (
	// ErrNoBracketMatch means a time inside the judgment window matched no
	// bracket. The tables are validated for total coverage at startup, so
	// this is an invariant violation, not a user error.
	ErrNoBracketMatch = errors.New("time of day does not fall in any bracket")

	// ErrInvalidBracketForNight means a correction named a bracket that does
	// not exist in the night's variant (weekday-only bracket on a weekend).
	ErrInvalidBracketForNight = errors.New("bracket is not valid for this night")

	// ErrAlreadyPublished means the nightly report was already posted;
	// later changes must go through the announcement update path instead.
	ErrAlreadyPublished = errors.New("report already published for this night")
)
