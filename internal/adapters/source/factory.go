package source

import (
	"go.trai.ch/dynctl/internal/adapters/fs"
	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory builds the ClosureSource a binding asks for.
type Factory struct {
	catalog *Catalog
	hasher  ports.Hasher
	store   ports.DefinitionStore
	files   *fs.DefinitionFiles
}

// NewFactory creates a Factory. store and files may be nil when no binding
// uses the corresponding source kind.
func NewFactory(catalog *Catalog, hasher ports.Hasher, store ports.DefinitionStore, files *fs.DefinitionFiles) *Factory {
	return &Factory{catalog: catalog, hasher: hasher, store: store, files: files}
}

// New returns the source for binding.
func (f *Factory) New(binding domain.Binding) (ports.ClosureSource, error) {
	switch binding.Kind {
	case domain.SourceController:
		return NewControllerSource(f.catalog, binding.Controller, binding.Action, f.hasher), nil
	case domain.SourceMixin:
		if binding.Mixin == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMixinRequired, "cannot build source"), "binding", binding.Key())
		}
		return NewMixinSource(f.catalog, binding.Mixin, binding.Action, f.hasher), nil
	case domain.SourceStore:
		if f.store == nil {
			return nil, zerr.With(zerr.New("no definition store configured"), "binding", binding.Key())
		}
		return NewStoreSource(f.store, binding.Action, f.hasher), nil
	case domain.SourceFile:
		if f.files == nil {
			return nil, zerr.With(zerr.New("no definition directory configured"), "binding", binding.Key())
		}
		return NewFileSource(f.files, binding.Controller, binding.Action, f.hasher), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSourceKind, "cannot build source"), "source", string(binding.Kind))
	}
}
