package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/roomvar/roomvar/internal/roomapi"
)

// setTestConfigHome redirects the config directory into a temp dir via
// XDG_CONFIG_HOME. Only linux resolves the config dir from that variable,
// so tests that touch the disk are skipped elsewhere.
func setTestConfigHome(t *testing.T) string {
	t.Helper()

	if runtime.GOOS != "linux" {
		t.Skip("config dir redirection via XDG_CONFIG_HOME requires linux")
	}

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "roomvar"
	if !strings.Contains(configDir, "roomvar") {
		t.Errorf("GetConfigDir() = %v, should contain 'roomvar'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirHonorsXDGConfigHome(t *testing.T) {
	tmpDir := setTestConfigHome(t)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	want := filepath.Join(tmpDir, "roomvar")
	if configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Servers == nil {
		t.Error("NewRegistry().Servers should not be nil")
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if reg.Preferences.BaseURL != roomapi.DefaultBaseURL {
		t.Errorf("NewRegistry().Preferences.BaseURL = %v, want %v",
			reg.Preferences.BaseURL, roomapi.DefaultBaseURL)
	}

	if reg.Preferences.RoomID != roomapi.DefaultRoomID {
		t.Errorf("NewRegistry().Preferences.RoomID = %v, want %v",
			reg.Preferences.RoomID, roomapi.DefaultRoomID)
	}

	if reg.Preferences.AutoDiscover {
		t.Error("NewRegistry().Preferences.AutoDiscover should be false by default")
	}

	if reg.Preferences.ScanTimeout != 10 {
		t.Errorf("NewRegistry().Preferences.ScanTimeout = %v, want 10", reg.Preferences.ScanTimeout)
	}
}

func TestRegistryEnsureServer(t *testing.T) {
	reg := NewRegistry()

	// First call should create server
	server1 := reg.EnsureServer("http://192.168.1.50:3000")
	if server1 == nil {
		t.Fatal("EnsureServer() returned nil")
	}

	// Second call should return same server
	server2 := reg.EnsureServer("http://192.168.1.50:3000")
	if server1 != server2 {
		t.Error("EnsureServer() should return same instance for same base URL")
	}

	// Different base URL should create new server
	server3 := reg.EnsureServer("http://192.168.1.51:3000")
	if server1 == server3 {
		t.Error("EnsureServer() should create new instance for different base URL")
	}
}

func TestRegistryTouchServer(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.TouchServer("http://192.168.1.50:3000", "V7as_cLh2m8UX2EIrRCjh")
	after := time.Now()

	server := reg.GetServer("http://192.168.1.50:3000")
	if server == nil {
		t.Fatal("Server should exist after TouchServer()")
	}

	if server.LastRoomID != "V7as_cLh2m8UX2EIrRCjh" {
		t.Errorf("LastRoomID = %v, want V7as_cLh2m8UX2EIrRCjh", server.LastRoomID)
	}

	if server.LastSeen.Before(before) || server.LastSeen.After(after) {
		t.Errorf("LastSeen = %v, should be between %v and %v", server.LastSeen, before, after)
	}

	// An empty room ID refreshes the timestamp but keeps the recorded room
	reg.TouchServer("http://192.168.1.50:3000", "")
	if server.LastRoomID != "V7as_cLh2m8UX2EIrRCjh" {
		t.Errorf("LastRoomID after empty touch = %v, want V7as_cLh2m8UX2EIrRCjh", server.LastRoomID)
	}
}

func TestRegistrySetServerNickname(t *testing.T) {
	reg := NewRegistry()

	reg.SetServerNickname("http://192.168.1.50:3000", "Studio B Controller")

	server := reg.GetServer("http://192.168.1.50:3000")
	if server == nil {
		t.Fatal("Server should exist after SetServerNickname()")
	}

	if server.Nickname != "Studio B Controller" {
		t.Errorf("Nickname = %v, want 'Studio B Controller'", server.Nickname)
	}
}

func TestLoadRegistryMissingFileYieldsDefaults(t *testing.T) {
	setTestConfigHome(t)

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	if reg.Version != 1 {
		t.Errorf("Version = %v, want 1", reg.Version)
	}

	if reg.Preferences.BaseURL != roomapi.DefaultBaseURL {
		t.Errorf("Preferences.BaseURL = %v, want %v", reg.Preferences.BaseURL, roomapi.DefaultBaseURL)
	}

	if len(reg.Servers) != 0 {
		t.Errorf("Servers = %v, want empty map", reg.Servers)
	}
}

func TestRegistrySaveAndReload(t *testing.T) {
	tmpDir := setTestConfigHome(t)

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	reg.SetServerNickname("http://192.168.1.50:3000", "Studio B Controller")
	reg.TouchServer("http://192.168.1.50:3000", "V7as_cLh2m8UX2EIrRCjh")
	reg.Preferences.BaseURL = "http://192.168.1.50:3000"
	reg.Preferences.ScanTimeout = 5

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The saved file carries the explanatory header
	data, err := os.ReadFile(filepath.Join(tmpDir, "roomvar", "config.yaml"))
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Roomvar Configuration File") {
		t.Errorf("Saved config should start with header comment, got: %.60s", string(data))
	}

	// Force a fresh read from disk
	loaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() after Save() error = %v", err)
	}

	server := loaded.GetServer("http://192.168.1.50:3000")
	if server == nil {
		t.Fatal("Server should exist in reloaded registry")
	}

	if server.Nickname != "Studio B Controller" {
		t.Errorf("Loaded nickname = %v, want 'Studio B Controller'", server.Nickname)
	}

	if server.LastRoomID != "V7as_cLh2m8UX2EIrRCjh" {
		t.Errorf("Loaded last room ID = %v, want V7as_cLh2m8UX2EIrRCjh", server.LastRoomID)
	}

	if server.LastSeen.IsZero() || time.Since(server.LastSeen) > time.Minute {
		t.Errorf("Loaded LastSeen = %v, should be recent", server.LastSeen)
	}

	if loaded.Preferences.BaseURL != "http://192.168.1.50:3000" {
		t.Errorf("Loaded Preferences.BaseURL = %v, want http://192.168.1.50:3000", loaded.Preferences.BaseURL)
	}

	if loaded.Preferences.ScanTimeout != 5 {
		t.Errorf("Loaded Preferences.ScanTimeout = %v, want 5", loaded.Preferences.ScanTimeout)
	}
}

func TestLoadRegistryParsesHandEditedFile(t *testing.T) {
	tmpDir := setTestConfigHome(t)

	configDir := filepath.Join(tmpDir, "roomvar")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	handEdited := `# hand-edited by a user
version: 1
servers:
  "http://10.0.0.7:3000":
    nickname: "Vault Room"
    last_room_id: "vault-01"
preferences:
  base_url: "http://10.0.0.7:3000"
  room_id: "vault-01"
  auto_discover: true
  scan_timeout: 3
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(handEdited), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	reg, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}

	server := reg.GetServer("http://10.0.0.7:3000")
	if server == nil {
		t.Fatal("Server from hand-edited file should exist")
	}

	if server.Nickname != "Vault Room" {
		t.Errorf("Nickname = %v, want 'Vault Room'", server.Nickname)
	}

	if !reg.Preferences.AutoDiscover {
		t.Error("Preferences.AutoDiscover should be true from file")
	}

	if reg.Preferences.ScanTimeout != 3 {
		t.Errorf("Preferences.ScanTimeout = %v, want 3", reg.Preferences.ScanTimeout)
	}
}

func TestLoadRegistryRejectsUnsupportedVersion(t *testing.T) {
	tmpDir := setTestConfigHome(t)

	configDir := filepath.Join(tmpDir, "roomvar")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("version: 2\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := ReloadRegistry()
	if err == nil {
		t.Fatal("ReloadRegistry() should fail for unsupported version")
	}

	if !strings.Contains(err.Error(), "unsupported config version") {
		t.Errorf("Error = %v, should mention unsupported config version", err)
	}
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkEnsureServer(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnsureServer("http://192.168.1.50:3000")
	}
}
