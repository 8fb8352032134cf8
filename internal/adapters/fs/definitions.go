package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extension is the file extension of closure definition files.
const Extension = ".closure"

// DefinitionFiles reads closure definitions laid out as
// <root>/<controller>/<action>.closure.
type DefinitionFiles struct {
	root string
}

// NewDefinitionFiles creates a DefinitionFiles rooted at root.
func NewDefinitionFiles(root string) *DefinitionFiles {
	return &DefinitionFiles{root: filepath.Clean(root)}
}

// Root returns the directory definitions are read from.
func (d *DefinitionFiles) Root() string {
	return d.root
}

// Path returns the file holding the definition of controller/action.
func (d *DefinitionFiles) Path(controller string, action domain.ActionName) (string, error) {
	for _, part := range []string{controller, action.String()} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", zerr.With(zerr.New("invalid definition path segment"), "segment", part)
		}
	}
	return filepath.Join(d.root, controller, action.String()+Extension), nil
}

// Read returns the definition text of controller/action.
// A missing file is reported as domain.ErrClosureNotFound; any other read
// failure as domain.ErrSourceUnavailable.
func (d *DefinitionFiles) Read(controller string, action domain.ActionName) (string, []byte, error) {
	path, err := d.Path(controller, action)
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is built from validated segments
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return path, nil, zerr.With(zerr.Wrap(domain.ErrClosureNotFound, "definition file missing"), "path", path)
		}
		return path, nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceUnavailable, err), "failed to read definition file"), "path", path)
	}

	return path, data, nil
}
