package domain

// Config mirrors ~/.rvx/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Backend             BackendSettings   `yaml:"backend"`
	Status              StatusSettings    `yaml:"status"`
	Console             ConsoleSettings   `yaml:"console"`
	Manifest            ManifestSettings  `yaml:"manifest"`
	Operations          OperationSettings `yaml:"operations"`
}

// BackendSettings names the external version-manager tool.
type BackendSettings struct {
	Command string `yaml:"command"`
}

// StatusSettings controls the version indicator.
type StatusSettings struct {
	Visible bool `yaml:"visible"`
}

// ConsoleSettings controls the managed interactive console.
type ConsoleSettings struct {
	AutoLaunch bool `yaml:"auto_launch"`
}

// ManifestSettings controls project manifest reconciliation.
type ManifestSettings struct {
	AutoCheck bool   `yaml:"auto_check"`
	Path      string `yaml:"path"`
}

// OperationSettings controls mutating backend operations.
type OperationSettings struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}
