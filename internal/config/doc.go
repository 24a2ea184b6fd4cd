// Package config provides user configuration management for the Roomvar project.
//
// This package manages a YAML-based configuration file that stores user-defined
// metadata for room servers, including nicknames and the last room used, plus
// application preferences. The configuration follows OS-specific conventions
// for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/roomvar/config.yaml or $HOME/.config/roomvar/config.yaml
//   - macOS: $HOME/.config/roomvar/config.yaml
//   - Windows: %LOCALAPPDATA%\roomvar\config.yaml
//
// # Usage Example
//
//	// Load the global registry
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Record a server the user just talked to
//	registry.SetServerNickname("http://192.168.1.50:3000", "Studio B Controller")
//	registry.TouchServer("http://192.168.1.50:3000", "V7as_cLh2m8UX2EIrRCjh")
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
