package domain

// SourceKind selects the backing store a binding resolves its closure from.
type SourceKind string

const (
	// SourceController resolves from an in-memory controller.
	SourceController SourceKind = "controller"
	// SourceMixin resolves from an in-memory mixin shared by several controllers.
	SourceMixin SourceKind = "mixin"
	// SourceStore resolves from persisted definitions.
	SourceStore SourceKind = "store"
	// SourceFile resolves from a definition file on disk.
	SourceFile SourceKind = "file"
)

// Valid reports whether k is one of the known source kinds.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceController, SourceMixin, SourceStore, SourceFile:
		return true
	default:
		return false
	}
}

// Binding pairs a controller action with the source that provides its closure.
type Binding struct {
	Controller string
	Action     ActionName
	Kind       SourceKind
	// Mixin names the mixin to resolve from. Only used with SourceMixin.
	Mixin string
}

// Key identifies the binding as "controller/action".
func (b Binding) Key() string {
	return BindingKey(b.Controller, b.Action.String())
}

// BindingKey builds the key used to look up a binding.
func BindingKey(controller, action string) string {
	return controller + "/" + action
}

// Manifest is the loaded dynctl configuration.
type Manifest struct {
	// Environment is the mode name from the manifest, possibly empty.
	Environment string
	// StorePath is the definitions store file, resolved against the manifest directory.
	StorePath string
	// ClosureDir holds file-backed definitions, resolved against the manifest directory.
	ClosureDir string
	Bindings   []Binding
}
