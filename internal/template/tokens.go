package template

import (
	"strings"

	"github.com/modu-ai/modular/pkg/models"
)

// Placeholder tokens recognized in stubs. The first four are shared with
// existing stub sets and must stay byte-for-byte identical.
const (
	TokenTitle     = "DummyTitle"
	TokenUCTitle   = "DummyUCtitle"
	TokenPrefix    = "DummyPrefix"
	TokenClass     = "DummyClass"
	TokenNamespace = "DummyNamespace"
	TokenPackage   = "DummyPackage"
	TokenTable     = "DummyTable"
)

// tokenNames lists every recognized token in substitution order.
var tokenNames = []string{
	TokenTitle, TokenUCTitle, TokenPrefix, TokenClass, TokenNamespace, TokenPackage, TokenTable,
}

// Tokens holds the values substituted for every placeholder in a stub.
type Tokens struct {
	Title     string // module name as supplied
	UCTitle   string // studly module name
	Prefix    string // "/" + lower-cased name + "/"
	Class     string // bare class name of the generated artifact
	Namespace string // import path of the artifact's package
	Package   string // package name of the artifact's directory
	Table     string // snake-case SQL table name
}

// TokenOption configures Tokens.
type TokenOption func(*Tokens)

// NewTokens derives the module-level tokens from id, then applies opts.
// Without options the class is the studly module name and the package is
// the module root package.
func NewTokens(id models.ModuleIdentity, opts ...TokenOption) *Tokens {
	t := &Tokens{
		Title:     id.Name(),
		UCTitle:   id.Studly(),
		Prefix:    id.Prefix(),
		Class:     id.Studly(),
		Namespace: id.Namespace(""),
		Package:   id.Package(),
		Table:     id.Snake(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WithClass sets the bare class name.
func WithClass(class string) TokenOption {
	return func(t *Tokens) {
		if class != "" {
			t.Class = class
		}
	}
}

// WithNamespace sets the artifact's import path.
func WithNamespace(ns string) TokenOption {
	return func(t *Tokens) {
		t.Namespace = ns
	}
}

// WithPackage sets the artifact's package name.
func WithPackage(pkg string) TokenOption {
	return func(t *Tokens) {
		if pkg != "" {
			t.Package = pkg
		}
	}
}

// Map returns the token to value mapping.
func (t *Tokens) Map() map[string]string {
	return map[string]string{
		TokenTitle:     t.Title,
		TokenUCTitle:   t.UCTitle,
		TokenPrefix:    t.Prefix,
		TokenClass:     t.Class,
		TokenNamespace: t.Namespace,
		TokenPackage:   t.Package,
		TokenTable:     t.Table,
	}
}

// Replacer returns a replacer substituting every token in one pass.
func (t *Tokens) Replacer() *strings.Replacer {
	values := t.Map()
	pairs := make([]string, 0, 2*len(tokenNames))
	for _, name := range tokenNames {
		pairs = append(pairs, name, values[name])
	}
	return strings.NewReplacer(pairs...)
}

// knownTokenMask blanks out every recognized token so leftovers can be detected.
var knownTokenMask = (&Tokens{}).Replacer()
