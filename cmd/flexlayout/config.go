package main

import (
	"github.com/pkg/errors"
	"go-simpler.org/env"
)

// Config holds environment defaults for the layout command.
type Config struct {
	Format string  `env:"FLEXLAYOUT_FORMAT" default:"table" usage:"output format: table, yaml or json"`
	Scale  float64 `env:"FLEXLAYOUT_SCALE" default:"0" usage:"snapping scale used when a document sets none"`
}

// source is an in-memory variable set, used in place of the process
// environment.
type source map[string]string

func (s source) LookupEnv(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// LoadConfig reads Config from src, or from the process environment when
// src is nil.
func LoadConfig(src source) (Config, error) {
	var c Config
	var opts *env.Options
	if src != nil {
		opts = &env.Options{Source: src}
	}
	if err := env.Load(&c, opts); err != nil {
		return Config{}, err
	}
	if _, err := parseOutputFormat(c.Format); err != nil {
		return Config{}, err
	}
	if c.Scale < 0 {
		return Config{}, errors.Errorf("FLEXLAYOUT_SCALE: invalid scale %v", c.Scale)
	}
	return c, nil
}
