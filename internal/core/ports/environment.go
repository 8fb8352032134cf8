// Package ports defines the core interfaces for the application.
package ports

// ModeProvider reports whether the process runs in development mode, in which
// cached closures must not be trusted.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type ModeProvider interface {
	// IsDevelopmentMode is read on every cache access.
	IsDevelopmentMode() bool
}
