package ports

// Hasher defines the interface for fingerprinting closure definitions.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint returns a stable revision string for data.
	Fingerprint(data []byte) string
}
