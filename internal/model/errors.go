package model

import "errors"

var (
	// ErrLookup marks every failure to find master data for a selection.
	// Header key misses and undefined mapping variants both unwrap to it.
	ErrLookup = errors.New("master lookup failed")

	// ErrInvalidSelection is returned for incomplete or unknown form values
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrDrawingNotFound is returned when no drawing PDF matches and the
	// missing-drawing policy is "fail"
	ErrDrawingNotFound = errors.New("no matching drawing PDF")
)
