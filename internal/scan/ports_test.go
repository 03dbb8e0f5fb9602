package scan

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	out   string
	err   error
	calls int
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	return f.out, f.err
}

const lsofFixture = `COMMAND   PID USER   FD   TYPE             DEVICE SIZE/OFF NODE NAME
node     1234 dev   23u  IPv4 0x1234567890      0t0  TCP *:3000 (LISTEN)
node     1234 dev   24u  IPv6 0x1234567891      0t0  TCP [::1]:3000 (LISTEN)
python   4321 dev   11u  IPv4 0x1234567892      0t0  TCP 127.0.0.1:3001 (LISTEN)
node     5678 dev   19u  IPv4 0x1234567893      0t0  TCP 127.0.0.1:3005 (LISTEN)
garbage line without enough fields
node     notapid dev 20u IPv4 0x1234567894      0t0  TCP *:3006 (LISTEN)
node     9999 dev   21u  IPv4 0x1234567895      0t0  TCP noport (LISTEN)`

func TestScanPorts(t *testing.T) {
	r := &fakeRunner{out: lsofFixture}
	got := ScanPorts(context.Background(), r, DefaultPortRange())

	want := []Listener{
		{PID: 1234, Port: 3000},
		{PID: 5678, Port: 3005},
	}
	if len(got) != len(want) {
		t.Fatalf("ScanPorts returned %d listeners, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("listener[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanPortsFirstMatchWinsPerPort(t *testing.T) {
	out := `node 100 dev 23u IPv4 0x1 0t0 TCP *:3000 (LISTEN)
node 200 dev 24u IPv4 0x2 0t0 TCP *:3000 (LISTEN)`
	got := ScanPorts(context.Background(), &fakeRunner{out: out}, DefaultPortRange())
	if len(got) != 1 || got[0].PID != 100 {
		t.Fatalf("expected only the first listener for port 3000, got %v", got)
	}
}

func TestScanPortsCommandFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1")}
	if got := ScanPorts(context.Background(), r, DefaultPortRange()); got != nil {
		t.Fatalf("expected no listeners on command failure, got %v", got)
	}
}

func TestScanPortsEmptyOutput(t *testing.T) {
	r := &fakeRunner{out: ""}
	if got := ScanPorts(context.Background(), r, DefaultPortRange()); got != nil {
		t.Fatalf("expected no listeners on empty output, got %v", got)
	}
}
