package config

import (
	"path/filepath"
	"strings"

	"github.com/modu-ai/modular/internal/fsys"
	"github.com/modu-ai/modular/pkg/models"
)

// Validate checks the configuration for correctness. All problems are
// reported together as *ValidationErrors.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateModules(&cfg.Modules)...)
	errs = append(errs, validateGenerator(&cfg.Generator)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateModules(m *ModulesConfig) []ValidationError {
	var errs []ValidationError

	switch {
	case m.Path == "":
		errs = append(errs, ValidationError{
			Field:   "modules.path",
			Message: "required field is empty; set it in modular.yaml (example: path: app/Modules)",
			Wrapped: ErrInvalidModulesPath,
		})
	case filepath.IsAbs(m.Path):
		errs = append(errs, ValidationError{
			Field:   "modules.path",
			Message: "must be relative to the project root",
			Value:   m.Path,
			Wrapped: ErrInvalidModulesPath,
		})
	case fsys.ValidateRelPath(m.Path) != nil:
		errs = append(errs, ValidationError{
			Field:   "modules.path",
			Message: "must stay inside the project root",
			Value:   m.Path,
			Wrapped: ErrInvalidModulesPath,
		})
	}

	for _, name := range m.Active {
		if !models.ValidModuleName(name) {
			errs = append(errs, ValidationError{
				Field:   "modules.active",
				Message: "module names must start with a letter and contain only letters, digits, '_' or '-'",
				Value:   name,
				Wrapped: models.ErrInvalidModuleName,
			})
		}
	}

	return errs
}

func validateGenerator(g *GeneratorConfig) []ValidationError {
	var errs []ValidationError

	if !strings.HasPrefix(g.Extension, ".") || len(g.Extension) < 2 || strings.ContainsAny(g.Extension, `/\`) {
		errs = append(errs, ValidationError{
			Field:   "generator.extension",
			Message: "must start with '.' (example: .go)",
			Value:   g.Extension,
			Wrapped: ErrInvalidExtension,
		})
	}

	if strings.TrimSpace(g.Namespace) == "" {
		errs = append(errs, ValidationError{
			Field:   "generator.namespace",
			Message: "required field is empty; set the root import path (example: namespace: example.com/app)",
			Wrapped: ErrInvalidConfig,
		})
	}

	return errs
}
