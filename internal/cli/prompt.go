package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"

	"github.com/modu-ai/modular/internal/core/module"
	"github.com/modu-ai/modular/pkg/models"
)

// errPromptCancelled is returned when the user aborts the prompt.
var errPromptCancelled = errors.New("cancelled")

// promptModule asks for the module name and the optional artifacts.
// It is a variable so tests can replace the interactive form.
var promptModule = runModulePrompt

// runModulePrompt runs each question as its own form to avoid the huh v0.8.x
// YOffset scroll bug with multi-group viewports.
func runModulePrompt(req *module.GenerateRequest) error {
	var name string
	nameField := huh.NewInput().
		Title("Module name").
		Description("Letters, digits, '_' or '-', starting with a letter").
		Placeholder("blog").
		Value(&name).
		Validate(func(v string) error {
			_, err := models.NewModuleIdentity(v)
			return err
		})
	if err := runForm(huh.NewGroup(nameField)); err != nil {
		return err
	}

	selected := selectedArtifacts(req)
	options := make([]huh.Option[models.ArtifactKind], 0, len(models.OptionalArtifacts()))
	for _, kind := range models.OptionalArtifacts() {
		options = append(options, huh.NewOption(kind.Label(), kind).Selected(slices.Contains(selected, kind)))
	}
	artifactField := huh.NewMultiSelect[models.ArtifactKind]().
		Title("Optional files").
		Options(options...).
		Value(&selected)
	if err := runForm(huh.NewGroup(artifactField)); err != nil {
		return err
	}

	req.Name = name
	applyArtifacts(req, selected)
	return nil
}

func runForm(g *huh.Group) error {
	if err := huh.NewForm(g).WithAccessible(false).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errPromptCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// selectedArtifacts lists the optional artifacts already requested by flags.
func selectedArtifacts(req *module.GenerateRequest) []models.ArtifactKind {
	var out []models.ArtifactKind
	for _, kind := range models.OptionalArtifacts() {
		if requested(req, kind) {
			out = append(out, kind)
		}
	}
	return out
}

func requested(req *module.GenerateRequest, kind models.ArtifactKind) bool {
	switch kind {
	case models.ArtifactController:
		return req.WithController
	case models.ArtifactModel:
		return req.WithModel
	case models.ArtifactRepository:
		return req.WithRepository
	case models.ArtifactInterface:
		return req.WithInterface
	case models.ArtifactMigration:
		return req.WithMigration
	}
	return false
}

// applyArtifacts sets the request flags from the selected artifacts.
func applyArtifacts(req *module.GenerateRequest, selected []models.ArtifactKind) {
	req.WithController = slices.Contains(selected, models.ArtifactController)
	req.WithModel = slices.Contains(selected, models.ArtifactModel)
	req.WithRepository = slices.Contains(selected, models.ArtifactRepository)
	req.WithInterface = slices.Contains(selected, models.ArtifactInterface)
	req.WithMigration = slices.Contains(selected, models.ArtifactMigration)
}
