// Package config provides configuration management for the cadcodec CLI.
package config

// Default values.
const (
	DefaultTarget      = "dxf"
	DefaultConcurrency = 4
)

// Config holds the CLI settings after defaults, the config file,
// environment variables and flags have been merged.
type Config struct {
	// OutputDir receives converted files; empty means next to the input.
	OutputDir string `koanf:"output_dir"`
	// Target is the output format name (dxf, script, json or yaml).
	Target string `koanf:"target"`
	// CodePage is used for interchange files that declare none.
	CodePage     string `koanf:"codepage"`
	PassThrough  bool   `koanf:"pass_through"`
	CodeWarnings bool   `koanf:"code_warnings"`
	Concurrency  int    `koanf:"concurrency"`
	Verbose      bool   `koanf:"verbose"`
}
