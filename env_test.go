package playlytics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvServerKey, "srv-env-key")
	t.Setenv(EnvBaseURL, "http://env.test:3000")
	t.Setenv(EnvAutoFlushInterval, "5000")
	t.Setenv(EnvMaxBatchSize, "50")
	t.Setenv(EnvDisableAutoFlush, "true")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	defer client.Shutdown(context.Background())

	if client.config.ServerKey != "srv-env-key" {
		t.Errorf("ServerKey = %q, want srv-env-key", client.config.ServerKey)
	}
	if client.config.BaseURL != "http://env.test:3000" {
		t.Errorf("BaseURL = %q, want http://env.test:3000", client.config.BaseURL)
	}
	if client.config.AutoFlushInterval != 5*time.Second {
		t.Errorf("AutoFlushInterval = %v, want 5s", client.config.AutoFlushInterval)
	}
	if client.config.MaxBatchSize != 50 {
		t.Errorf("MaxBatchSize = %d, want 50", client.config.MaxBatchSize)
	}
	if !client.config.DisableAutoFlush {
		t.Error("DisableAutoFlush should be true")
	}
}

func TestNewFromEnvMissingServerKey(t *testing.T) {
	t.Setenv(EnvServerKey, "")

	if _, err := NewFromEnv(); err == nil {
		t.Error("NewFromEnv should fail without a server key")
	}
}

func TestNewFromEnvInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric interval", EnvAutoFlushInterval, "soon"},
		{"zero interval", EnvAutoFlushInterval, "0"},
		{"non-numeric batch size", EnvMaxBatchSize, "many"},
		{"negative batch size", EnvMaxBatchSize, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvServerKey, "srv-env-key")
			t.Setenv(tt.key, tt.value)

			if _, err := NewFromEnv(); err == nil {
				t.Errorf("NewFromEnv should reject %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestNewFromEnvExplicitOptionsWin(t *testing.T) {
	t.Setenv(EnvServerKey, "srv-env-key")
	t.Setenv(EnvBaseURL, "http://env.test:3000")

	client, err := NewFromEnv(
		WithBaseURL("http://explicit.test:4000"),
		WithAutoFlush(false),
	)
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	defer client.Shutdown(context.Background())

	if client.config.BaseURL != "http://explicit.test:4000" {
		t.Errorf("BaseURL = %q, explicit option should override the environment", client.config.BaseURL)
	}
}

func TestNewFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PLAYLYTICS_SERVER_KEY=srv-file-key\n" +
		"PLAYLYTICS_BASE_URL=http://file.test:3000\n" +
		"PLAYLYTICS_MAX_BATCH_SIZE=25\n" +
		"PLAYLYTICS_DISABLE_AUTO_FLUSH=1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	client, err := NewFromEnvFile(path)
	if err != nil {
		t.Fatalf("NewFromEnvFile failed: %v", err)
	}
	defer client.Shutdown(context.Background())

	if client.config.ServerKey != "srv-file-key" {
		t.Errorf("ServerKey = %q, want srv-file-key", client.config.ServerKey)
	}
	if client.config.BaseURL != "http://file.test:3000" {
		t.Errorf("BaseURL = %q, want http://file.test:3000", client.config.BaseURL)
	}
	if client.config.MaxBatchSize != 25 {
		t.Errorf("MaxBatchSize = %d, want 25", client.config.MaxBatchSize)
	}
	if !client.config.DisableAutoFlush {
		t.Error("DisableAutoFlush should be true")
	}
}

func TestNewFromEnvFileMissing(t *testing.T) {
	if _, err := NewFromEnvFile(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("NewFromEnvFile should fail for a missing file")
	}
}
