package config

// Config is the root configuration of a modular project.
type Config struct {
	Modules   ModulesConfig   `yaml:"modules" envPrefix:"MODULAR_"`
	Generator GeneratorConfig `yaml:"generator" envPrefix:"MODULAR_"`
}

// ModulesConfig locates the modules and selects which ones are active.
type ModulesConfig struct {
	// Path is the modules root, relative to the project root.
	Path string `yaml:"path" env:"MODULES_PATH"`

	// Active lists the modules to boot. Empty means every directory found
	// under Path.
	Active []string `yaml:"active" env:"ACTIVE_MODULES" envSeparator:","`
}

// GeneratorConfig controls make:module.
type GeneratorConfig struct {
	StubsDir  string `yaml:"stubs_dir" env:"STUBS_DIR"`
	Extension string `yaml:"extension" env:"EXTENSION"`
	Namespace string `yaml:"namespace" env:"NAMESPACE"`
	Format    bool   `yaml:"format" env:"FORMAT"`
	Atomic    bool   `yaml:"atomic" env:"ATOMIC"`
}
