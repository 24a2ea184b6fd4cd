package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name        string
		entry       *zeroconf.ServiceEntry
		wantNil     bool
		wantName    string
		wantIP      string
		wantPort    int
		wantRoom    string
		wantVersion string
	}{
		{
			name: "server with IPv4 and TXT records",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "Escape Room Controller"},
				HostName:      "roomctl.local.",
				Port:          3000,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
				Text:          []string{"room=V7as_cLh2m8UX2EIrRCjh", "version=1.2.0"},
			},
			wantNil:     false,
			wantName:    "Escape Room Controller",
			wantIP:      "192.168.1.50",
			wantPort:    3000,
			wantRoom:    "V7as_cLh2m8UX2EIrRCjh",
			wantVersion: "1.2.0",
		},
		{
			name: "server without TXT records",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "bare"},
				HostName:      "bare.local.",
				Port:          3000,
				AddrIPv4:      []net.IP{net.ParseIP("10.0.0.5")},
				Text:          []string{},
			},
			wantNil:  false,
			wantName: "bare",
			wantIP:   "10.0.0.5",
			wantPort: 3000,
		},
		{
			name: "server with custom port",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "alt-port"},
				HostName:      "alt.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.100")},
			},
			wantNil:  false,
			wantName: "alt-port",
			wantIP:   "192.168.1.100",
			wantPort: 8080,
		},
		{
			name: "server with no port specified (should default to 3000)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "no-port"},
				HostName:      "noport.local.",
				Port:          0,
				AddrIPv4:      []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantNil:  false,
			wantName: "no-port",
			wantIP:   "172.16.0.1",
			wantPort: 3000,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "no-addr"},
				HostName:      "noaddr.local.",
				Port:          3000,
				AddrIPv4:      []net.IP{},
				AddrIPv6:      []net.IP{},
			},
			wantNil: true,
		},
		{
			name: "IPv6 only server",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "v6-only"},
				HostName:      "v6.local.",
				Port:          3000,
				AddrIPv6:      []net.IP{net.ParseIP("fe80::1")},
			},
			wantNil:  false,
			wantName: "v6-only",
			wantIP:   "fe80::1",
			wantPort: 3000,
		},
		{
			name: "server with both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "dual-stack"},
				HostName:      "dual.local.",
				Port:          3000,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.51")},
				AddrIPv6:      []net.IP{net.ParseIP("fe80::2")},
			},
			wantNil:  false,
			wantName: "dual-stack",
			wantIP:   "192.168.1.51",
			wantPort: 3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if server != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", server)
				}
				return
			}

			if server == nil {
				t.Fatal("parseServiceEntry() = nil, want non-nil server")
			}

			if server.Name != tt.wantName {
				t.Errorf("server.Name = %v, want %v", server.Name, tt.wantName)
			}

			if server.IP != tt.wantIP {
				t.Errorf("server.IP = %v, want %v", server.IP, tt.wantIP)
			}

			if server.Port != tt.wantPort {
				t.Errorf("server.Port = %v, want %v", server.Port, tt.wantPort)
			}

			if server.Room != tt.wantRoom {
				t.Errorf("server.Room = %v, want %v", server.Room, tt.wantRoom)
			}

			if server.Version != tt.wantVersion {
				t.Errorf("server.Version = %v, want %v", server.Version, tt.wantVersion)
			}

			if server.Hostname != tt.entry.HostName {
				t.Errorf("server.Hostname = %v, want %v", server.Hostname, tt.entry.HostName)
			}

			// Check that DiscoveredAt is recent (within last second)
			if time.Since(server.DiscoveredAt) > time.Second {
				t.Errorf("server.DiscoveredAt is not recent: %v", server.DiscoveredAt)
			}
		})
	}
}

func TestScanner_parseServiceEntry_Metadata(t *testing.T) {
	scanner := NewScanner()

	entry := &zeroconf.ServiceEntry{
		ServiceRecord: zeroconf.ServiceRecord{Instance: "Escape Room Controller"},
		HostName:      "roomctl.local.",
		Port:          3000,
		AddrIPv4:      []net.IP{net.ParseIP("192.168.1.50")},
		Text:          []string{"room=V7as_cLh2m8UX2EIrRCjh", "version=1.2.0", "flag", "path=/api"},
	}

	server := scanner.parseServiceEntry(entry)
	if server == nil {
		t.Fatal("parseServiceEntry() = nil, want server")
	}

	// Check metadata parsing
	expectedMetadata := map[string]string{
		"room":    "V7as_cLh2m8UX2EIrRCjh",
		"version": "1.2.0",
		"flag":    "", // Key without value
		"path":    "/api",
	}

	if len(server.Metadata) != len(expectedMetadata) {
		t.Errorf("server.Metadata has %d entries, want %d", len(server.Metadata), len(expectedMetadata))
	}

	for key, expectedValue := range expectedMetadata {
		if actualValue, ok := server.Metadata[key]; !ok {
			t.Errorf("server.Metadata missing key %q", key)
		} else if actualValue != expectedValue {
			t.Errorf("server.Metadata[%q] = %q, want %q", key, actualValue, expectedValue)
		}
	}
}

func TestNewScanner(t *testing.T) {
	scanner := NewScanner()

	if scanner == nil {
		t.Fatal("NewScanner() = nil, want scanner")
	}

	if scanner.Timeout != DefaultScanTimeout {
		t.Errorf("scanner.Timeout = %v, want %v", scanner.Timeout, DefaultScanTimeout)
	}
}

// Note: Integration tests with live mDNS discovery and announcement require
// multicast network access and should be run manually with:
// go test -tags=integration ./internal/discovery/
