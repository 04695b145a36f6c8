package sbs

import "errors"

// Sentinel errors for catalog API responses.
var (
	// ErrInvalidID indicates an upstream id whose trailing segment is not an integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrMissingFeed indicates a program without a resolvable episode feed.
	ErrMissingFeed = errors.New("program has no episode feed")
)
