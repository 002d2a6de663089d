package port

import (
	"net"
	"testing"
)

func TestIsPortAvailable_Busy(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	defer l.Close()

	busy := l.Addr().(*net.TCPAddr).Port
	if NewScanner().IsPortAvailable(busy) {
		t.Errorf("port %d reported available while bound", busy)
	}
}

func TestIsPortAvailable_Free(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	free := l.Addr().(*net.TCPAddr).Port
	l.Close()

	if !NewScanner().IsPortAvailable(free) {
		t.Errorf("port %d reported busy after close", free)
	}
}

func TestFindAvailablePort_SkipsBusy(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	defer l.Close()
	busy := l.Addr().(*net.TCPAddr).Port

	got, err := NewScanner().FindAvailablePort(busy, busy+20)
	if err != nil {
		t.Fatalf("FindAvailablePort() error: %v", err)
	}
	if got == busy {
		t.Errorf("FindAvailablePort() returned busy port %d", busy)
	}
}
