package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modu-ai/modular/pkg/models"
)

//go:embed stubs
var embeddedStubs embed.FS

// Stub names, relative to the stub source root.
const (
	StubWebRoutes  = "routes/web.stub"
	StubAPIRoutes  = "routes/api.stub"
	StubHelper     = "helper.stub"
	StubController = "controller.stub"
	StubModel      = "model.stub"
	StubRepository = "repository.stub"
	StubInterface  = "interface.stub"
	StubMigration  = "migration.stub"
)

// StubFor returns the stub name used to render an artifact kind.
func StubFor(kind models.ArtifactKind) (string, bool) {
	switch kind {
	case models.ArtifactWebRoutes:
		return StubWebRoutes, true
	case models.ArtifactAPIRoutes:
		return StubAPIRoutes, true
	case models.ArtifactHelper:
		return StubHelper, true
	case models.ArtifactController:
		return StubController, true
	case models.ArtifactModel:
		return StubModel, true
	case models.ArtifactRepository:
		return StubRepository, true
	case models.ArtifactInterface:
		return StubInterface, true
	case models.ArtifactMigration:
		return StubMigration, true
	}
	return "", false
}

// EmbeddedStubs returns the stubs compiled into the binary.
func EmbeddedStubs() (fs.FS, error) {
	sub, err := fs.Sub(embeddedStubs, "stubs")
	if err != nil {
		return nil, fmt.Errorf("embedded stubs: %w", err)
	}
	return sub, nil
}

// StubSource returns the stub filesystem to render from. With dir set, stubs
// found in dir take precedence and the embedded stubs fill the gaps.
func StubSource(dir string) (fs.FS, error) {
	embedded, err := EmbeddedStubs()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return embedded, nil
	}
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStubsDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrStubsDir, dir)
	}
	return overlayFS{primary: os.DirFS(dir), fallback: embedded}, nil
}

// overlayFS opens names from primary, falling back when they do not exist there.
type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.fallback.Open(name)
}
