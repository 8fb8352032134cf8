package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dynctl/internal/adapters/environment"
	"go.trai.ch/dynctl/internal/adapters/fs"
	"go.trai.ch/dynctl/internal/adapters/logger"
	"go.trai.ch/dynctl/internal/adapters/source"
	"go.trai.ch/dynctl/internal/app"
	"go.trai.ch/dynctl/internal/core/domain"
	"go.trai.ch/dynctl/internal/core/ports"
	"go.trai.ch/dynctl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeSources hands out preconfigured sources by binding key.
type fakeSources map[string]ports.ClosureSource

func (f fakeSources) New(b domain.Binding) (ports.ClosureSource, error) {
	src, ok := f[b.Key()]
	if !ok {
		return nil, errors.New("no fake source for " + b.Key())
	}
	return src, nil
}

func opener(sources fakeSources, store ports.DefinitionStore) app.BackendOpener {
	return func(*domain.Manifest) (*app.Backends, error) {
		return &app.Backends{Sources: sources, Store: store}, nil
	}
}

func discardLogger() ports.Logger {
	return logger.NewWithWriter(io.Discard, slog.LevelDebug)
}

func mockSource(ctrl *gomock.Controller, action string) *mocks.MockClosureSource {
	src := mocks.NewMockClosureSource(ctrl)
	src.EXPECT().ActionName().Return(domain.MustActionName(action)).AnyTimes()
	return src
}

func bookManifest(env string, actions ...string) *domain.Manifest {
	m := &domain.Manifest{Environment: env}
	for _, a := range actions {
		m.Bindings = append(m.Bindings, domain.Binding{
			Controller: "book",
			Action:     domain.MustActionName(a),
			Kind:       domain.SourceController,
		})
	}
	return m
}

func TestApp_Resolve_ArgumentOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	show := mockSource(ctrl, "show")
	list := mockSource(ctrl, "list")
	show.EXPECT().Resolve(gomock.Any()).Return(&domain.Closure{Action: domain.MustActionName("show"), Code: "SHOW_LOGIC"}, nil)
	list.EXPECT().Resolve(gomock.Any()).Return(&domain.Closure{Action: domain.MustActionName("list"), Code: "LIST_LOGIC"}, nil)

	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{"book/show": show, "book/list": list}, nil))
	require.NoError(t, a.Configure(bookManifest("", "show", "list")))

	closures, err := a.Resolve(context.Background(), "book", []string{"list", "show"})
	require.NoError(t, err)
	require.Len(t, closures, 2)
	assert.Equal(t, "LIST_LOGIC", closures[0].Code)
	assert.Equal(t, "SHOW_LOGIC", closures[1].Code)
}

func TestApp_Resolve_Memoizes(t *testing.T) {
	ctrl := gomock.NewController(t)

	show := mockSource(ctrl, "show")
	show.EXPECT().Resolve(gomock.Any()).Return(&domain.Closure{Code: "SHOW_LOGIC"}, nil).Times(1)

	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{"book/show": show}, nil))
	require.NoError(t, a.Configure(bookManifest("production", "show")))

	first, err := a.Resolve(context.Background(), "book", []string{"show"})
	require.NoError(t, err)
	second, err := a.Resolve(context.Background(), "book", []string{"show"})
	require.NoError(t, err)
	assert.Same(t, first[0], second[0])
}

func TestApp_Configure_DevelopmentBypass(t *testing.T) {
	ctrl := gomock.NewController(t)

	show := mockSource(ctrl, "show")
	show.EXPECT().Resolve(gomock.Any()).Return(&domain.Closure{Code: "SHOW_LOGIC"}, nil).Times(3)

	env := environment.New(domain.ModeProduction)
	a := app.New(mocks.NewMockConfigLoader(ctrl), env, discardLogger(), opener(fakeSources{"book/show": show}, nil))
	require.NoError(t, a.Configure(bookManifest("development", "show")))
	assert.Equal(t, domain.ModeDevelopment, a.Mode())

	for range 3 {
		_, err := a.Resolve(context.Background(), "book", []string{"show"})
		require.NoError(t, err)
	}
}

func TestApp_Configure_PinnedModeWins(t *testing.T) {
	t.Setenv(environment.Variable, "production")
	env, err := environment.FromEnv(domain.ModeProduction)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	a := app.New(mocks.NewMockConfigLoader(ctrl), env, discardLogger(), opener(fakeSources{}, nil))
	require.NoError(t, a.Configure(&domain.Manifest{Environment: "development"}))
	assert.Equal(t, domain.ModeProduction, a.Mode())

	a.SetMode(domain.ModeDevelopment)
	assert.Equal(t, domain.ModeDevelopment, a.Mode())
}

func TestApp_Configure_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{}, nil))

	err := a.Configure(bookManifest("", "show"))
	require.Error(t, err)
}

func TestApp_Resolve_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)

	show := mockSource(ctrl, "show")
	show.EXPECT().Resolve(gomock.Any()).
		Return(nil, domain.ErrClosureNotFound).AnyTimes()

	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{"book/show": show}, nil))
	require.NoError(t, a.Configure(bookManifest("", "show")))

	tests := []struct {
		name       string
		controller string
		actions    []string
		wantErr    error
	}{
		{name: "no actions", controller: "book", wantErr: domain.ErrNoActionsSpecified},
		{name: "unknown action", controller: "book", actions: []string{"delete"}, wantErr: domain.ErrBindingNotFound},
		{name: "unknown controller", controller: "author", actions: []string{"show"}, wantErr: domain.ErrBindingNotFound},
		{name: "empty action", controller: "book", actions: []string{"  "}, wantErr: domain.ErrEmptyActionName},
		{name: "source failure", controller: "book", actions: []string{"show"}, wantErr: domain.ErrClosureNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closures, err := a.Resolve(context.Background(), tt.controller, tt.actions)
			require.Error(t, err)
			assert.Nil(t, closures)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	cause := errors.New("boom")
	loader.EXPECT().Load("broken.yaml").Return(nil, cause)
	loader.EXPECT().Load("dynctl.yaml").Return(&domain.Manifest{}, nil)

	a := app.New(loader, environment.New(domain.ModeProduction), discardLogger(), opener(fakeSources{}, nil))

	err := a.Load("broken.yaml")
	require.ErrorIs(t, err, cause)
	require.NoError(t, a.Load("dynctl.yaml"))
}

func TestApp_Define(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDefinitionStore(ctrl)

	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(def domain.Definition) error {
		assert.Equal(t, "show", def.Action.String())
		assert.Equal(t, "SHOW_LOGIC", def.Code)
		return nil
	})

	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{}, store))
	require.NoError(t, a.Configure(&domain.Manifest{}))

	require.NoError(t, a.Define(context.Background(), " show ", "SHOW_LOGIC"))
	require.ErrorIs(t, a.Define(context.Background(), "", "x"), domain.ErrEmptyActionName)
}

func TestApp_Define_NoStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{}, nil))
	require.NoError(t, a.Configure(&domain.Manifest{}))

	require.Error(t, a.Define(context.Background(), "show", "SHOW_LOGIC"))
}

func TestApp_Define_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDefinitionStore(ctrl)
	cause := errors.New("read-only file system")
	store.EXPECT().Put(gomock.Any()).Return(cause)

	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		opener(fakeSources{}, store))
	require.NoError(t, a.Configure(&domain.Manifest{}))

	require.ErrorIs(t, a.Define(context.Background(), "show", "SHOW_LOGIC"), cause)
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	closures := filepath.Join(dir, "closures")
	require.NoError(t, os.MkdirAll(filepath.Join(closures, "book"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(closures, "book", "show.closure"), []byte("SHOW_LOGIC"), 0o600))

	catalog := source.NewCatalog()
	catalog.AddController(app.NewSystemController())

	manifest := &domain.Manifest{
		StorePath:  filepath.Join(dir, "definitions.json"),
		ClosureDir: closures,
		Bindings: []domain.Binding{
			{Controller: "book", Action: domain.MustActionName("show"), Kind: domain.SourceFile},
			{Controller: "book", Action: domain.MustActionName("audit"), Kind: domain.SourceStore},
			{Controller: app.SystemController, Action: domain.MustActionName("ping"), Kind: domain.SourceController},
		},
	}

	ctrl := gomock.NewController(t)
	a := app.New(mocks.NewMockConfigLoader(ctrl), environment.New(domain.ModeProduction), discardLogger(),
		app.OpenBackends(catalog, fs.NewHasher()))
	require.NoError(t, a.Configure(manifest))

	_, err := a.Resolve(context.Background(), "book", []string{"audit"})
	require.ErrorIs(t, err, domain.ErrClosureNotFound)

	require.NoError(t, a.Define(context.Background(), "audit", "AUDIT_LOGIC"))

	got, err := a.Resolve(context.Background(), "book", []string{"show", "audit"})
	require.NoError(t, err)
	assert.Equal(t, "SHOW_LOGIC", got[0].Code)
	assert.Equal(t, "AUDIT_LOGIC", got[1].Code)
	assert.Equal(t, "store", got[1].Origin)

	ping, err := a.Resolve(context.Background(), app.SystemController, []string{"ping"})
	require.NoError(t, err)
	require.NotNil(t, ping[0].Fn)
	out, err := ping[0].Fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}
