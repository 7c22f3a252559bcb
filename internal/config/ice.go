package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pion/webrtc/v4"
)

// ICEServer is the config-file shape of a STUN/TURN server handed to clients.
type ICEServer struct {
	URLs       []string `mapstructure:"urls"`
	Username   string   `mapstructure:"username"`
	Credential string   `mapstructure:"credential"`
}

// WebRTCICEServers converts and validates the configured ICE servers.
func (c *Config) WebRTCICEServers() ([]webrtc.ICEServer, error) {
	out := make([]webrtc.ICEServer, 0, len(c.ICEServers))
	for i, server := range c.ICEServers {
		urls := make([]string, 0, len(server.URLs))
		for _, url := range server.URLs {
			if url = strings.TrimSpace(url); url != "" {
				urls = append(urls, url)
			}
		}
		pcServer := webrtc.ICEServer{
			URLs:     urls,
			Username: strings.TrimSpace(server.Username),
		}
		if strings.TrimSpace(server.Credential) != "" {
			pcServer.Credential = server.Credential
		}
		if err := validateICEServer(pcServer); err != nil {
			return nil, fmt.Errorf("ice_servers[%d]: %w", i, err)
		}
		out = append(out, pcServer)
	}
	return out, nil
}

func validateICEServer(server webrtc.ICEServer) error {
	if len(server.URLs) == 0 {
		return errors.New("missing urls")
	}

	requiresTurnCreds := false
	for _, url := range server.URLs {
		if !isAllowedICEScheme(url) {
			return fmt.Errorf("unsupported url scheme: %q", url)
		}
		if strings.HasPrefix(url, "turn:") || strings.HasPrefix(url, "turns:") {
			requiresTurnCreds = true
		}
	}

	if requiresTurnCreds {
		if server.Username == "" {
			return errors.New("turn urls require username")
		}
		if cred, ok := server.Credential.(string); !ok || strings.TrimSpace(cred) == "" {
			return errors.New("turn urls require credential")
		}
	}
	return nil
}

func isAllowedICEScheme(url string) bool {
	switch {
	case strings.HasPrefix(url, "stun:"),
		strings.HasPrefix(url, "stuns:"),
		strings.HasPrefix(url, "turn:"),
		strings.HasPrefix(url, "turns:"):
		return true
	default:
		return false
	}
}
