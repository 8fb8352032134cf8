package source

import (
	"context"

	"go.trai.ch/dynctl/internal/adapters/fs"
	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
)

var _ ports.ClosureSource = (*FileSource)(nil)

// FileSource resolves an action from its definition file. The file is read on
// every call, which is what makes edits visible in development mode.
type FileSource struct {
	files      *fs.DefinitionFiles
	controller string
	action     domain.ActionName
	hasher     ports.Hasher
}

// NewFileSource creates a FileSource for controller/action.
func NewFileSource(files *fs.DefinitionFiles, controller string, action domain.ActionName, hasher ports.Hasher) *FileSource {
	return &FileSource{files: files, controller: controller, action: action, hasher: hasher}
}

// Resolve implements ports.ClosureSource.
func (s *FileSource) Resolve(_ context.Context) (*domain.Closure, error) {
	path, data, err := s.files.Read(s.controller, s.action)
	if err != nil {
		return nil, err
	}

	return &domain.Closure{
		Action:   s.action,
		Origin:   "file:" + path,
		Code:     string(data),
		Revision: s.hasher.Fingerprint(data),
	}, nil
}

// ActionName implements ports.ClosureSource.
func (s *FileSource) ActionName() domain.ActionName {
	return s.action
}
