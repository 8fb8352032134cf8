package domain

import "go.trai.ch/zerr"

var (
	// ErrClosureNotFound is returned when a backing source has no closure for an action.
	ErrClosureNotFound = zerr.New("closure not found")

	// ErrSourceUnavailable is returned when a backing source cannot be read.
	ErrSourceUnavailable = zerr.New("closure source unavailable")

	// ErrEmptyActionName is returned when an action name is empty.
	ErrEmptyActionName = zerr.New("action name is empty")

	// ErrUnknownMode is returned when an environment mode name is not recognized.
	ErrUnknownMode = zerr.New("unknown environment mode")

	// ErrUnknownSourceKind is returned when a binding names an unsupported source.
	ErrUnknownSourceKind = zerr.New("unknown source kind")

	// ErrDuplicateBinding is returned when the same controller action is bound twice.
	ErrDuplicateBinding = zerr.New("duplicate binding")

	// ErrBindingNotFound is returned when no binding exists for a controller action.
	ErrBindingNotFound = zerr.New("binding not found")

	// ErrNoActionsSpecified is returned when a resolve request names no actions.
	ErrNoActionsSpecified = zerr.New("no actions specified")

	// ErrMixinRequired is returned when a mixin binding does not name its mixin.
	ErrMixinRequired = zerr.New("mixin name required")
)
