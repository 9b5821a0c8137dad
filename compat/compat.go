// Package compat keeps the deprecated creator methods available behind a
// wrapper so the core types stay free of them.
package compat

import (
	"log/slog"
	"sync"

	"github.com/stateforward/go-act"
	"github.com/stateforward/go-act/internal/config"
	"github.com/stateforward/go-act/kinds"
)

const bindedWarning = `"binded" method is deprecated. It has been renamed to "bound" to fix a typo`

// Config controls the shim. It is read from the environment once.
type Config struct {
	Warnings bool `env:"ACT_DEPRECATION_WARNINGS" envDefault:"true"`
}

// Logger receives deprecation warnings.
var Logger = slog.Default()

var load = sync.OnceValue(func() Config {
	cfg := Config{Warnings: true}
	if err := config.ParseEnv(&cfg); err != nil {
		Logger.Error("invalid compat configuration", "error", err)
		return Config{Warnings: true}
	}
	return cfg
})

// Legacy exposes the deprecated aliases of a creator.
type Legacy struct {
	act.Creator
	config Config
}

// Wrap returns creator with the deprecated aliases, configured from the environment.
func Wrap(creator act.Creator) *Legacy {
	return WrapConfig(creator, load())
}

func WrapConfig(creator act.Creator, cfg Config) *Legacy {
	return &Legacy{Creator: creator, config: cfg}
}

// Binded is the misspelled form of Bound. Each call logs a warning.
func (legacy *Legacy) Binded() bool {
	if legacy.config.Warnings {
		Logger.Warn(bindedWarning, "type", legacy.Type())
	}
	return legacy.Bound()
}

// Dispatched reports whether calling the creator forwards its action.
func (legacy *Legacy) Dispatched() bool {
	if kinds.IsKind(legacy.Kind(), kinds.Bound) {
		return true
	}
	return legacy.Assigned()
}
