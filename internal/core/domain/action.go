package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// ActionName identifies the unit of controller logic a caller wants resolved.
// It wraps a unique.Handle[string] since the same handful of action names is
// repeated across every controller binding.
type ActionName struct {
	h unique.Handle[string]
}

// NewActionName creates an ActionName from s, trimming surrounding whitespace.
// Empty names are rejected with ErrEmptyActionName.
func NewActionName(s string) (ActionName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ActionName{}, ErrEmptyActionName
	}
	return ActionName{h: unique.Make(s)}, nil
}

// MustActionName is like NewActionName but panics on an invalid name.
func MustActionName(s string) ActionName {
	name, err := NewActionName(s)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the underlying action name.
func (a ActionName) String() string {
	var zero unique.Handle[string]
	if a.h == zero {
		return ""
	}
	return a.h.Value()
}

// IsZero reports whether the name was never set.
func (a ActionName) IsZero() bool {
	var zero unique.Handle[string]
	return a.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (a ActionName) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActionName) UnmarshalText(text []byte) error {
	name, err := NewActionName(string(text))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid action name"), "action", string(text))
	}
	*a = name
	return nil
}
