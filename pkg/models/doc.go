// Package models provides shared data models and types for modular.
//
// # Module Identity
//
// A [ModuleIdentity] is built once from a user-supplied module name and
// exposes every derived form the generator and loader need:
//
//	id, err := models.NewModuleIdentity("blog_post")
//	id.Name()   // "blog_post"
//	id.Studly() // "BlogPost"
//	id.Prefix() // "/blog_post/"
//
// # Artifacts
//
// Generated files are classified by [ArtifactKind]. The route files and the
// helper file are always generated; the remaining kinds are opt-in:
//
//	kind := models.ArtifactController
//	if kind.IsOptional() {
//	    fmt.Println("generated on request:", kind.Label())
//	}
package models
