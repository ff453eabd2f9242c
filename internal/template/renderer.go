package template

import (
	"fmt"
	"io/fs"
	"regexp"
)

// unknownTokenPattern matches anything that looks like a placeholder once
// the recognized tokens are masked out.
var unknownTokenPattern = regexp.MustCompile(`Dummy[A-Z][A-Za-z0-9]*`)

// Renderer renders stubs by placeholder substitution.
type Renderer interface {
	// Render reads the named stub and substitutes every placeholder with the
	// values in tokens. Returns ErrStubNotFound if the stub does not exist
	// and ErrUnexpandedToken if the stub uses an unknown placeholder.
	Render(stubName string, tokens *Tokens) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given stub filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render reads and renders a stub.
func (r *renderer) Render(stubName string, tokens *Tokens) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, stubName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStubNotFound, stubName)
	}
	return Substitute(content, tokens)
}

// Substitute replaces every placeholder in stub. The result depends only on
// stub and tokens.
func Substitute(stub []byte, tokens *Tokens) ([]byte, error) {
	// Unknown placeholders are checked on the stub, not the output, so module
	// names that happen to start with "Dummy" are not flagged.
	if loc := unknownTokenPattern.Find([]byte(knownTokenMask.Replace(string(stub)))); loc != nil {
		return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, string(loc))
	}
	return []byte(tokens.Replacer().Replace(string(stub))), nil
}
