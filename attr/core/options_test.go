package core

import "testing"

func TestApplyPrepareOptions(t *testing.T) {
	cfg := ApplyPrepareOptions(WithMaxDepth(8), WithInitialCapacity(1024))
	if cfg.MaxDepth != 8 {
		t.Fatalf("max depth = %d, want 8", cfg.MaxDepth)
	}
	if cfg.InitialCapacity != 1024 {
		t.Fatalf("initial capacity = %d, want 1024", cfg.InitialCapacity)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyPrepareOptions(WithMaxDepth(-1), WithInitialCapacity(-1), nil)
	def := DefaultPrepareConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestMaxDepthZeroDisablesLimit(t *testing.T) {
	cfg := ApplyPrepareOptions(WithMaxDepth(0))
	if cfg.MaxDepth != 0 {
		t.Fatalf("max depth = %d, want 0", cfg.MaxDepth)
	}
}
