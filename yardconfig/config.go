package yardconfig

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// defaultPlacementExitSlackS is the outgoing top-of-stack guard constant
// used when a configuration omits placement_exit_slack_s.
const defaultPlacementExitSlackS = 4000

// defaultFeedPeriodS is the live Entry Feeder's arrival cadence used when
// a configuration omits feed_period_s.
const defaultFeedPeriodS = 35

// Load reads a YAML configuration file through a viper.Viper instance,
// unmarshals it into a Config, and validates it. Grounded in the
// FromYaml pattern: a fresh *viper.Viper per call (not the global
// singleton) so concurrent loads of different files never share state.
func Load(path string) (Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUnmarshalConfig, err)
	}

	if cfg.PlacementExitSlackS == 0 {
		cfg.PlacementExitSlackS = defaultPlacementExitSlackS
	}
	if cfg.FeedPeriodS == 0 {
		cfg.FeedPeriodS = defaultFeedPeriodS
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate enforces the fail-fast configuration invariants: a well-formed
// yard geometry, non-negative timings, positive buffer capacity, and a
// duplicate-free, well-addressed initial layout.
func validate(cfg Config) error {
	if len(cfg.StackNames) < 2 {
		return ErrTooFewStacks
	}
	if len(cfg.StackNames) == 2 {
		return ErrNoBufferStack
	}
	if cfg.BufferCapacity <= 0 {
		return ErrBadBufferCapacity
	}
	for _, t := range []Timing{cfg.CraneMove, cfg.CraneLower, cfg.CraneLift, cfg.Clearing} {
		if t.Minutes < 0 || t.Seconds < 0 {
			return ErrNegativeTiming
		}
	}

	seen := make(map[string]bool)
	for _, layout := range cfg.InitialLayout {
		if cfg.StackIndex(layout.Stack) < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownStack, layout.Stack)
		}
		for _, c := range layout.Containers {
			if seen[c.ID] {
				return fmt.Errorf("%w: %q", ErrDuplicateContainerID, c.ID)
			}
			seen[c.ID] = true
		}
	}
	return nil
}
