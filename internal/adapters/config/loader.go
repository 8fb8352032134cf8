// Package config provides the manifest loader for dynctl.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the manifest file looked up when none is given.
	DefaultFilename = "dynctl.yaml"
	// DefaultStore is the definitions store used when the manifest names none.
	DefaultStore = ".dynctl/definitions.json"
	// DefaultClosures is the definition directory used when the manifest names none.
	DefaultClosures = "closures"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger.Named("config")}
}

// Load reads the manifest at path. Relative store and closure paths are
// resolved against the manifest's directory.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var mf Manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if mf.Version != "" && mf.Version != "1" {
		l.logger.Warn("unsupported manifest version, reading as version 1", "version", mf.Version, "path", path)
	}

	manifest, err := toDomain(&mf, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("loaded manifest", "path", path, "bindings", len(manifest.Bindings))
	return manifest, nil
}

func toDomain(mf *Manifest, dir string) (*domain.Manifest, error) {
	if mf.Environment != "" {
		if _, err := domain.ParseMode(mf.Environment); err != nil {
			return nil, err
		}
	}

	manifest := &domain.Manifest{
		Environment: mf.Environment,
		StorePath:   resolvePath(dir, mf.Store, DefaultStore),
		ClosureDir:  resolvePath(dir, mf.Closures, DefaultClosures),
		Bindings:    make([]domain.Binding, 0, len(mf.Actions)),
	}

	seen := make(map[string]bool, len(mf.Actions))
	for i, dto := range mf.Actions {
		binding, err := toBinding(dto)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}

		key := binding.Key()
		if seen[key] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateBinding, "invalid binding"), "binding", key)
		}
		seen[key] = true

		manifest.Bindings = append(manifest.Bindings, binding)
	}

	return manifest, nil
}

func toBinding(dto BindingDTO) (domain.Binding, error) {
	controller := strings.TrimSpace(dto.Controller)
	if controller == "" || strings.ContainsAny(controller, `/\`) {
		return domain.Binding{}, zerr.With(zerr.New("invalid controller name"), "controller", dto.Controller)
	}

	action, err := domain.NewActionName(dto.Action)
	if err != nil {
		return domain.Binding{}, zerr.With(zerr.Wrap(err, "invalid binding"), "controller", controller)
	}

	kind := domain.SourceKind(strings.ToLower(strings.TrimSpace(dto.Source)))
	if kind == "" {
		kind = domain.SourceController
	}
	if !kind.Valid() {
		return domain.Binding{}, zerr.With(zerr.Wrap(domain.ErrUnknownSourceKind, "invalid binding"), "source", dto.Source)
	}

	binding := domain.Binding{
		Controller: controller,
		Action:     action,
		Kind:       kind,
		Mixin:      strings.TrimSpace(dto.Mixin),
	}
	if kind == domain.SourceMixin && binding.Mixin == "" {
		return domain.Binding{}, zerr.With(zerr.Wrap(domain.ErrMixinRequired, "invalid binding"), "binding", binding.Key())
	}

	return binding, nil
}

func resolvePath(dir, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
