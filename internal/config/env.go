// Package config holds the environment and exit helpers shared by the
// command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables into target.
// A nil environ reads the process environment; otherwise only environ is
// consulted.
func ParseEnv(target any, environ map[string]string) error {
	var err error
	if environ == nil {
		err = env.Parse(target)
	} else {
		err = env.ParseWithOptions(target, env.Options{Environment: environ})
	}
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
