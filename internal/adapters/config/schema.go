package config

// ProjectFile represents the structure of the .salt-dependencies.yaml file.
// Only VendorDir is consumed; the other fields are decoded so that a
// well-formed document never fails on them.
type ProjectFile struct {
	Project      string `yaml:"project"`
	VendorDir    string `yaml:"vendor_dir"`
	Dependencies any    `yaml:"dependencies"`
}

// HostSettings is the set of host keys resolved from flags, environment and
// the Salt master configuration.
type HostSettings struct {
	Cwd       string `mapstructure:"cwd"`
	ConfigDir string `mapstructure:"config_dir"`
	HashType  string `mapstructure:"hash_type"`
}
