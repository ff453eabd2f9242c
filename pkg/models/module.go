package models

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidModuleName indicates a module name that cannot be turned into a
// directory, a namespace and a URL prefix.
var ErrInvalidModuleName = errors.New("invalid module name")

// moduleNamePattern accepts a leading letter followed by letters, digits,
// underscores or hyphens.
var moduleNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ModuleIdentity is the normalized identity of a module. All derived forms
// are computed once in NewModuleIdentity.
type ModuleIdentity struct {
	name   string
	studly string
	lower  string
}

// NewModuleIdentity validates name and derives its studly and lower-cased forms.
func NewModuleIdentity(name string) (ModuleIdentity, error) {
	name = strings.TrimSpace(name)
	if !ValidModuleName(name) {
		return ModuleIdentity{}, fmt.Errorf("%w: %q (must start with a letter and contain only letters, digits, '_' or '-')", ErrInvalidModuleName, name)
	}
	id := ModuleIdentity{
		name:   name,
		studly: studly(name),
		lower:  cases.Lower(language.Und).String(name),
	}
	if pkg := id.Package(); token.IsKeyword(pkg) {
		return ModuleIdentity{}, fmt.Errorf("%w: %q (package name %q is a Go keyword)", ErrInvalidModuleName, name, pkg)
	}
	return id, nil
}

// ValidModuleName reports whether name can be used as a module name.
func ValidModuleName(name string) bool {
	return moduleNamePattern.MatchString(name)
}

// Name returns the module name as supplied.
func (m ModuleIdentity) Name() string { return m.name }

// Studly returns the upper-camel-case form, used for directory and class names.
func (m ModuleIdentity) Studly() string { return m.studly }

// Lower returns the lower-cased module name.
func (m ModuleIdentity) Lower() string { return m.lower }

// Snake returns the lower-cased name with '-' replaced by '_', usable as a
// SQL identifier and in file names.
func (m ModuleIdentity) Snake() string { return strings.ReplaceAll(m.lower, "-", "_") }

// Prefix returns the URL prefix form: the lower-cased name wrapped in slashes.
func (m ModuleIdentity) Prefix() string { return "/" + m.lower + "/" }

// ClassName returns the studly name followed by suffix (e.g. "BlogController").
func (m ModuleIdentity) ClassName(suffix string) string { return m.studly + suffix }

// Namespace returns the import path of a package inside the module:
// root/Modules/<Studly>/segments...
func (m ModuleIdentity) Namespace(root string, segments ...string) string {
	parts := append([]string{root, "Modules", m.studly}, segments...)
	return strings.Trim(path.Join(parts...), "/")
}

// Package returns the Go package name for a directory inside the module.
// Without segments it names the module root package.
func (m ModuleIdentity) Package(segments ...string) string {
	last := m.studly
	if len(segments) > 0 && segments[len(segments)-1] != "" {
		last = segments[len(segments)-1]
	}
	return cases.Lower(language.Und).String(last)
}

// IsZero reports whether the identity was never initialized.
func (m ModuleIdentity) IsZero() bool { return m.name == "" }

// String implements fmt.Stringer.
func (m ModuleIdentity) String() string { return m.studly }

// studly splits on '_' and '-' and upper-cases the first letter of each word
// without touching the rest.
func studly(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	var b strings.Builder
	for _, w := range words {
		b.WriteString(cases.Title(language.Und, cases.NoLower).String(w))
	}
	return b.String()
}
