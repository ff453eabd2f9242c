package models

// ArtifactKind classifies a file produced by the module generator.
type ArtifactKind string

const (
	ArtifactWebRoutes  ArtifactKind = "web-routes"
	ArtifactAPIRoutes  ArtifactKind = "api-routes"
	ArtifactHelper     ArtifactKind = "helper"
	ArtifactController ArtifactKind = "controller"
	ArtifactModel      ArtifactKind = "model"
	ArtifactRepository ArtifactKind = "repository"
	ArtifactInterface  ArtifactKind = "interface"
	ArtifactMigration  ArtifactKind = "migration"
)

// MandatoryArtifacts returns the kinds generated for every module, in generation order.
func MandatoryArtifacts() []ArtifactKind {
	return []ArtifactKind{ArtifactAPIRoutes, ArtifactWebRoutes, ArtifactHelper}
}

// OptionalArtifacts returns the opt-in kinds, in generation order.
func OptionalArtifacts() []ArtifactKind {
	return []ArtifactKind{ArtifactController, ArtifactModel, ArtifactRepository, ArtifactInterface, ArtifactMigration}
}

// IsValid checks if the kind is a known artifact.
func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactWebRoutes, ArtifactAPIRoutes, ArtifactHelper,
		ArtifactController, ArtifactModel, ArtifactRepository, ArtifactInterface, ArtifactMigration:
		return true
	}
	return false
}

// IsOptional reports whether the kind is only generated on request.
func (k ArtifactKind) IsOptional() bool {
	return k.IsValid() && k != ArtifactWebRoutes && k != ArtifactAPIRoutes && k != ArtifactHelper
}

// IsRoutes reports whether the kind is one of the route files.
func (k ArtifactKind) IsRoutes() bool {
	return k == ArtifactWebRoutes || k == ArtifactAPIRoutes
}

// Label returns the human-readable name used in console messages.
func (k ArtifactKind) Label() string {
	switch k {
	case ArtifactWebRoutes:
		return "Web routes"
	case ArtifactAPIRoutes:
		return "API routes"
	case ArtifactHelper:
		return "Helper"
	case ArtifactController:
		return "Controller"
	case ArtifactModel:
		return "Model"
	case ArtifactRepository:
		return "Repository"
	case ArtifactInterface:
		return "Interface"
	case ArtifactMigration:
		return "Migration"
	}
	return string(k)
}
