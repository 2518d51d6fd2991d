package gameerrors

import "errors"

// Lookup and configuration sentinel errors. Shared by hand, joker, config and
// scoring so callers can match with errors.Is without importing each other.
var (
	ErrUnknownHandType = errors.New("unknown hand type")
	ErrUnknownPlanet   = errors.New("unknown planet")
	ErrUnknownJoker    = errors.New("unknown joker")
	ErrUnknownEdition  = errors.New("unknown edition")
	ErrUnknownBlind    = errors.New("unknown blind")
	ErrUnknownCard     = errors.New("unknown card")
	ErrInvalidConfig   = errors.New("invalid config")
)
