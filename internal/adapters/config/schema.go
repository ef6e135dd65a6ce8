package config

// Droidfile represents the structure of the droid.yaml configuration file.
type Droidfile struct {
	Version       string   `yaml:"version"`
	SourceDir     string   `yaml:"sourceDir"`
	AppName       string   `yaml:"appName"`
	Mode          string   `yaml:"mode"`
	Args          []string `yaml:"args"`
	DevServerPort int      `yaml:"devServerPort"`
}
