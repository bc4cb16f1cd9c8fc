package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEBHOOK_DISABLED", "true")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Http.Port != ":8080" {
		t.Fatalf("unexpected port %q", cfg.Http.Port)
	}
	if cfg.Dispatch.ResponderRadiusKm != 50 {
		t.Fatalf("unexpected radius %v", cfg.Dispatch.ResponderRadiusKm)
	}
	if cfg.Dispatch.ProfileCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.Dispatch.ProfileCacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("WEBHOOK_URL", "http://hooks.local/assign")
	t.Setenv("RESPONDER_RADIUS_KM", "12.5")
	t.Setenv("PROFILE_CACHE_TTL", "30s")
	t.Setenv("WEBHOOK_WORKERS", "4")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Http.Port != ":9090" || cfg.Postgres.Port != 6543 {
		t.Fatalf("unexpected http/postgres: %+v %+v", cfg.Http, cfg.Postgres)
	}
	if cfg.Dispatch.ResponderRadiusKm != 12.5 || cfg.Dispatch.ProfileCacheTTL != 30*time.Second {
		t.Fatalf("unexpected dispatch: %+v", cfg.Dispatch)
	}
	if cfg.Webhook.Workers != 4 {
		t.Fatalf("unexpected webhook workers %d", cfg.Webhook.Workers)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Http:     HttpConfig{Port: ":8080"},
			Postgres: PostgresConfig{Host: "localhost"},
			Webhook:  WebhookConfig{URL: "http://hooks.local"},
			Dispatch: DispatchConfig{ResponderRadiusKm: 50},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"ok", func(c *Config) {}, false},
		{"port_without_colon", func(c *Config) { c.Http.Port = "8080" }, true},
		{"no_postgres_host", func(c *Config) { c.Postgres.Host = "" }, true},
		{"no_webhook_url", func(c *Config) { c.Webhook.URL = "" }, true},
		{"webhook_disabled_no_url", func(c *Config) { c.Webhook = WebhookConfig{Disabled: true} }, false},
		{"zero_radius", func(c *Config) { c.Dispatch.ResponderRadiusKm = 0 }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := valid()
			c.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("wantErr=%v got %v", c.wantErr, err)
			}
		})
	}
}
