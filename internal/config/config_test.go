package config

import (
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, noEnv)
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.DatabaseURI != defaultDatabaseURI {
		t.Errorf("expected default database URI %q, got %q", defaultDatabaseURI, cfg.DatabaseURI)
	}
	if cfg.BrokerURL != defaultBrokerURL {
		t.Errorf("expected default broker URL %q, got %q", defaultBrokerURL, cfg.BrokerURL)
	}
	if cfg.DBPoolMaxConns != defaultDBPoolMaxConns {
		t.Errorf("expected default pool size %d, got %d", defaultDBPoolMaxConns, cfg.DBPoolMaxConns)
	}
	if cfg.ConnectAttempts != defaultConnectAttempts {
		t.Errorf("expected default connect attempts %d, got %d", defaultConnectAttempts, cfg.ConnectAttempts)
	}
	if cfg.ConnectBackoff != defaultConnectBackoff {
		t.Errorf("expected default connect backoff %v, got %v", defaultConnectBackoff, cfg.ConnectBackoff)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":       ":9090",
		"DATABASE_URI":      "postgres://user:pass@db:5432/checkout",
		"RABBITMQ_URL":      "amqp://user:pass@mq:5672/",
		"DB_POOL_MAX_CONNS": "25",
		"CONNECT_ATTEMPTS":  "3",
		"CONNECT_BACKOFF":   "500ms",
		"PUBLISH_BUFFER":    "128",
		"PUBLISH_WORKERS":   "8",
	}

	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://user:pass@db:5432/checkout" {
		t.Errorf("unexpected database URI %q", cfg.DatabaseURI)
	}
	if cfg.BrokerURL != "amqp://user:pass@mq:5672/" {
		t.Errorf("unexpected broker URL %q", cfg.BrokerURL)
	}
	if cfg.DBPoolMaxConns != 25 {
		t.Errorf("expected pool size 25, got %d", cfg.DBPoolMaxConns)
	}
	if cfg.ConnectAttempts != 3 {
		t.Errorf("expected 3 connect attempts, got %d", cfg.ConnectAttempts)
	}
	if cfg.ConnectBackoff != 500*time.Millisecond {
		t.Errorf("expected 500ms backoff, got %v", cfg.ConnectBackoff)
	}
	if cfg.PublishBuffer != 128 || cfg.PublishWorkers != 8 {
		t.Errorf("unexpected publish settings %d/%d", cfg.PublishBuffer, cfg.PublishWorkers)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	env := map[string]string{"RUN_ADDRESS": ":9090"}
	args := []string{"-a", ":7070", "-connect-backoff", "1s", "-connect-attempts", "2"}

	cfg, err := load(args, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Errorf("expected flag to win, got %q", cfg.RunAddress)
	}
	if cfg.ConnectBackoff != time.Second {
		t.Errorf("expected 1s backoff, got %v", cfg.ConnectBackoff)
	}
	if cfg.ConnectAttempts != 2 {
		t.Errorf("expected 2 attempts, got %d", cfg.ConnectAttempts)
	}
}

func TestLoadRejectsInvalidDurations(t *testing.T) {
	if _, err := load([]string{"-connect-backoff", "nonsense"}, noEnv); err == nil {
		t.Fatal("expected error for invalid backoff")
	}
	if _, err := load([]string{"-shutdown-timeout", "nonsense"}, noEnv); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadFallsBackOnInvalidValues(t *testing.T) {
	env := map[string]string{
		"DB_POOL_MAX_CONNS": "-5",
		"PUBLISH_BUFFER":    "0",
		"PUBLISH_WORKERS":   "not-a-number",
	}

	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.DBPoolMaxConns != defaultDBPoolMaxConns {
		t.Errorf("expected pool size fallback, got %d", cfg.DBPoolMaxConns)
	}
	if cfg.PublishBuffer != defaultPublishBuffer {
		t.Errorf("expected publish buffer fallback, got %d", cfg.PublishBuffer)
	}
	if cfg.PublishWorkers != defaultPublishWorkers {
		t.Errorf("expected publish workers fallback, got %d", cfg.PublishWorkers)
	}
}
