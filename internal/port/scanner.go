// Package port checks whether a dev-server port is free on this machine.
package port

import (
	"fmt"
	"net"
)

// Scanner checks port availability by binding to it.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
func NewScanner() *Scanner {
	return &Scanner{}
}

// IsPortAvailable reports whether a TCP listener can bind port on all
// interfaces.
func (s *Scanner) IsPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}

// FindAvailablePort returns the first free port in [start, end].
func (s *Scanner) FindAvailablePort(start, end int) (int, error) {
	for p := start; p <= end; p++ {
		if s.IsPortAvailable(p) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("no available tcp port found in range %d-%d", start, end)
}
