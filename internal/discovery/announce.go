package discovery

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"
)

// Announcer advertises a room server over mDNS until shut down.
type Announcer struct {
	zc *zeroconf.Server
}

// Announce registers a room server instance on the local network.
// The room and version values are published as TXT records so clients
// can pre-fill their room ID without an extra request.
// An empty name falls back to the machine hostname.
func Announce(name string, port int, room, version string) (*Announcer, error) {
	if name == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "roomvar"
		}
		name = host
	}

	var txt []string
	if room != "" {
		txt = append(txt, "room="+room)
	}
	if version != "" {
		txt = append(txt, "version="+version)
	}

	zc, err := zeroconf.Register(name, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return &Announcer{zc: zc}, nil
}

// Shutdown withdraws the mDNS advertisement.
// Safe to call on a nil Announcer.
func (a *Announcer) Shutdown() {
	if a == nil || a.zc == nil {
		return
	}
	a.zc.Shutdown()
}
