package debug

import "go-simpler.org/env"

// Config is the environment-driven debug configuration.
type Config struct {
	Path  string `env:"FLEX_DEBUG" usage:"append layout debug logs to this file"`
	Dumps bool   `env:"FLEX_DEBUG_DUMP" default:"false" usage:"include style dumps in debug logs"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c, nil); err != nil {
		return Config{}, err
	}
	return c, nil
}

// InitFromEnv enables logging when FLEX_DEBUG is set.
// With no path configured it leaves logging disabled and returns nil.
func InitFromEnv() error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	SetDumps(c.Dumps)
	if c.Path == "" {
		return nil
	}
	return Init(c.Path)
}
