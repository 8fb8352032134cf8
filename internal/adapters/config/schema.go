package config

// Manifest represents the structure of the dynctl.yaml configuration file.
type Manifest struct {
	Version     string       `yaml:"version"`
	Environment string       `yaml:"environment"`
	Store       string       `yaml:"store"`
	Closures    string       `yaml:"closures"`
	Actions     []BindingDTO `yaml:"actions"`
}

// BindingDTO represents an action binding in the configuration.
type BindingDTO struct {
	Controller string `yaml:"controller"`
	Action     string `yaml:"action"`
	Source     string `yaml:"source"`
	Mixin      string `yaml:"mixin"`
}
