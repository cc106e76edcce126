package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func restoreProperties(t *testing.T) {
	t.Helper()
	saved := Properties
	t.Cleanup(func() {
		Properties = saved
	})
}

func TestSetupConfigDefaults(t *testing.T) {
	restoreProperties(t)
	SetupConfig("")
	if Properties.Bind != "0.0.0.0" {
		t.Errorf("default bind: %s", Properties.Bind)
	}
	if Properties.Port != 1234 {
		t.Errorf("default port: %d", Properties.Port)
	}
	if Properties.PoolSize != runtime.NumCPU() {
		t.Errorf("default pool size %d, want CPU count %d", Properties.PoolSize, runtime.NumCPU())
	}
	if Properties.HandleTimeout != 0 {
		t.Errorf("default handle timeout should be off, got %v", Properties.HandleTimeout)
	}
}

func TestSetupConfigFile(t *testing.T) {
	restoreProperties(t)
	src := `
bind: 127.0.0.1
port: 6399
pool-size: 4
handle-timeout: 30s
log-level: debug
`
	filename := filepath.Join(t.TempDir(), "netserve.yaml")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	SetupConfig(filename)
	if Properties.Bind != "127.0.0.1" {
		t.Errorf("bind: %s", Properties.Bind)
	}
	if Properties.Port != 6399 {
		t.Errorf("port: %d", Properties.Port)
	}
	if Properties.PoolSize != 4 {
		t.Errorf("pool size: %d", Properties.PoolSize)
	}
	if Properties.HandleTimeout != 30*time.Second {
		t.Errorf("handle timeout: %v", Properties.HandleTimeout)
	}
	if Properties.LogLevel != "debug" {
		t.Errorf("log level: %s", Properties.LogLevel)
	}
}

func TestSetupConfigEnvOverride(t *testing.T) {
	restoreProperties(t)
	t.Setenv("NETSERVE_PORT", "4567")
	t.Setenv("NETSERVE_POOL_SIZE", "3")
	SetupConfig("")
	if Properties.Port != 4567 {
		t.Errorf("port from env: %d", Properties.Port)
	}
	if Properties.PoolSize != 3 {
		t.Errorf("pool size from env: %d", Properties.PoolSize)
	}
}
