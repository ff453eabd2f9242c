package defs

// ConfigYAML is the project-level configuration file read from the project root.
const ConfigYAML = "modular.yaml"

// File names generated at the root of every module. The configured extension
// is appended (e.g. "web" + ".go").
const (
	WebRoutesFile = "web"
	APIRoutesFile = "api"
	HelperFile    = "helper"
)

// Module subdirectory names.
const (
	ControllersDir  = "Controllers"
	RepositoriesDir = "Repositories"
	InterfacesDir   = "Interfaces"
	TranslationsDir = "Translations"
	ViewsDir        = "Views"
	JobsDir         = "Jobs"
	ModelsDir       = "Models"
	EventsDir       = "Events"
	MigrationsDir   = "Migrations"
)

// ModulesSegment is the path segment every module namespace is nested under.
const ModulesSegment = "Modules"

// ModuleDirs lists the subdirectories created for every new module, in creation order.
var ModuleDirs = []string{
	ControllersDir,
	RepositoriesDir,
	InterfacesDir,
	TranslationsDir,
	ViewsDir,
	JobsDir,
	ModelsDir,
	EventsDir,
	MigrationsDir,
}
