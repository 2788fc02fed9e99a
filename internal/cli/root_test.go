package cli

import (
	"context"
	"testing"

	"github.com/temporalkit/tgmin/pkg/config"
)

func TestSetVersion(t *testing.T) {
	defer SetVersion("", "", "")
	SetVersion("v1.2.3", "abc123", "2026-01-01")

	if version != "v1.2.3" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("SetVersion did not store values: %q %q %q", version, commit, date)
	}
}

func TestConfigContext(t *testing.T) {
	cfg := config.Default()
	cfg.Serve.Addr = ":1234"

	ctx := withConfig(context.Background(), cfg)
	if got := configFromContext(ctx); got.Serve.Addr != ":1234" {
		t.Errorf("configFromContext().Serve.Addr = %q, want :1234", got.Serve.Addr)
	}

	// Without attachment the default config comes back.
	if got := configFromContext(context.Background()); got.Cache.Backend != config.BackendFile {
		t.Errorf("fallback config backend = %q, want file", got.Cache.Backend)
	}
}
