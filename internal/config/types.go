package config

// Config is the root configuration structure
type Config struct {
	Settings Settings       `yaml:"settings" json:"settings"`
	Host     HostConfig     `yaml:"host" json:"host"`
	Presets  []PresetConfig `yaml:"presets" json:"presets"`
}

// Settings contains global application settings
type Settings struct {
	SmallStep    float64 `yaml:"smallStep" json:"smallStep"`       // Arrow key step
	LargeStep    float64 `yaml:"largeStep" json:"largeStep"`       // Arrow key step with shift held
	PollInterval string  `yaml:"pollInterval" json:"pollInterval"` // Refresh tick, e.g. "250ms"
	Alignment    string  `yaml:"alignment" json:"alignment"`       // "edge" or "legacy"
	Backend      string  `yaml:"backend" json:"backend"`           // "remote" or "x11"
}

// HostConfig locates the accessibility host for the remote backend
type HostConfig struct {
	Socket  string `yaml:"socket" json:"socket"`
	Timeout string `yaml:"timeout" json:"timeout"` // e.g. "5s"
}

// PresetConfig is a named snap rectangle in raw flipped-global coordinates
type PresetConfig struct {
	ID          string `yaml:"id" json:"id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Frame       string `yaml:"frame" json:"frame"` // "WxH+X+Y" or "X,Y,W,H"
}
