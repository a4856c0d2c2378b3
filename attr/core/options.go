package core

// PrepareConfig defines common attribute preparation settings.
type PrepareConfig struct {
	// MaxDepth bounds the nesting depth accepted when flattening accessor
	// values. Zero means unlimited.
	MaxDepth int
	// InitialCapacity presizes per-attribute value buffers, in instances.
	InitialCapacity int
}

// PrepareOption mutates a PrepareConfig.
type PrepareOption func(*PrepareConfig)

// DefaultPrepareConfig returns defaults suitable for typical layer sizes.
func DefaultPrepareConfig() PrepareConfig {
	return PrepareConfig{
		MaxDepth:        64,
		InitialCapacity: 0,
	}
}

// WithMaxDepth sets the flatten depth limit. Zero disables the limit.
func WithMaxDepth(depth int) PrepareOption {
	return func(cfg *PrepareConfig) {
		if depth >= 0 {
			cfg.MaxDepth = depth
		}
	}
}

// WithInitialCapacity presizes attribute buffers for n instances.
func WithInitialCapacity(n int) PrepareOption {
	return func(cfg *PrepareConfig) {
		if n > 0 {
			cfg.InitialCapacity = n
		}
	}
}

// ApplyPrepareOptions applies zero or more options to the default config.
func ApplyPrepareOptions(opts ...PrepareOption) PrepareConfig {
	cfg := DefaultPrepareConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
