package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AiviaDir is the project-local directory holding config and logs.
const AiviaDir = ".aivia"

const configFile = "config.toml"

const DefaultConfigToml = `# AIVIA configuration

log_level = "info"
log_file = ".aivia/aivia.log"

# Optional YAML file overriding the built-in role catalog.
roles_file = ""

# Multiplier applied to every scripted delay. 0.5 runs the demo at half
# speed, 2.0 at double speed.
pacing = 1.0
`

type Config struct {
	LogLevel  string  `toml:"log_level"`
	LogFile   string  `toml:"log_file"`
	RolesFile string  `toml:"roles_file"`
	Pacing    float64 `toml:"pacing"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		LogFile:  filepath.Join(AiviaDir, "aivia.log"),
		Pacing:   1.0,
	}
}

// LoadFromRoot reads .aivia/config.toml under root. A missing file is not an
// error; defaults apply so the TUI runs without an init step.
func LoadFromRoot(root string) (Config, error) {
	raw, err := os.ReadFile(configPath(root))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Pacing <= 0 {
		cfg.Pacing = 1.0
	}
	return cfg, nil
}

// EnsureInitialized writes the default config if none exists.
func EnsureInitialized(root string) error {
	path := configPath(root)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(root, AiviaDir), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfigToml), 0o644)
}

func configPath(root string) string {
	return filepath.Join(root, AiviaDir, configFile)
}
