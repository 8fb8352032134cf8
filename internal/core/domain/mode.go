package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode is the environment the process runs in.
type Mode uint8

const (
	// ModeProduction trusts cached closures. It is the zero value.
	ModeProduction Mode = iota
	// ModeTest behaves like production for caching purposes.
	ModeTest
	// ModeDevelopment bypasses cached closures so live edits take effect.
	ModeDevelopment
)

// ParseMode parses a mode name. Matching is case-insensitive and accepts the
// short forms "dev" and "prod".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return ModeDevelopment, nil
	case "test":
		return ModeTest, nil
	case "prod", "production":
		return ModeProduction, nil
	default:
		return ModeProduction, zerr.With(zerr.Wrap(ErrUnknownMode, "failed to parse mode"), "mode", s)
	}
}

// IsDevelopment reports whether m is ModeDevelopment.
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeTest:
		return "test"
	default:
		return "production"
	}
}
