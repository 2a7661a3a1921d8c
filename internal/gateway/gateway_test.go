package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeSF writes an executable shell script that prints payload and exits
// with the given code, standing in for the sf binary.
func fakeSF(t *testing.T, payload string, exitCode int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sf")
	script := fmt.Sprintf("#!/bin/sh\ncat <<'EOF'\n%s\nEOF\nexit %d\n", payload, exitCode)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake sf: %v", err)
	}
	return path
}

func TestRunJSON_UnwrapsEnvelope(t *testing.T) {
	c := &CLI{Bin: fakeSF(t, `{"status":0,"result":{"name":"Config__mdt"}}`, 0)}

	raw, err := c.RunJSON(context.Background(), "sobject", "describe")
	if err != nil {
		t.Fatalf("RunJSON: %v", err)
	}
	if got, want := string(raw), `{"name":"Config__mdt"}`; got != want {
		t.Errorf("result: got %s, want %s", got, want)
	}
}

func TestRunJSON_EnvelopeStatusFailure(t *testing.T) {
	c := &CLI{Bin: fakeSF(t, `{"status":1,"result":null}`, 1)}

	_, err := c.RunJSON(context.Background(), "data", "query")
	if !errors.Is(err, ErrGateway) {
		t.Errorf("got %v, want ErrGateway", err)
	}
}

func TestRunJSON_InvalidJSON(t *testing.T) {
	c := &CLI{Bin: fakeSF(t, "not json at all", 0)}

	_, err := c.RunJSON(context.Background(), "org", "list", "metadata")
	if !errors.Is(err, ErrGateway) {
		t.Errorf("got %v, want ErrGateway", err)
	}
}

func TestRunJSON_MissingBinary(t *testing.T) {
	c := &CLI{Bin: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := c.RunJSON(context.Background(), "org", "list", "metadata")
	if !errors.Is(err, ErrGateway) {
		t.Errorf("got %v, want ErrGateway", err)
	}
}

func TestNewCLI_DefaultsToPath(t *testing.T) {
	t.Setenv("SF_BIN", "")
	if got := NewCLI().Bin; got != "sf" {
		t.Errorf("Bin: got %q, want sf", got)
	}

	t.Setenv("SF_BIN", "/opt/sf/bin/sf")
	if got := NewCLI().Bin; got != "/opt/sf/bin/sf" {
		t.Errorf("Bin: got %q, want /opt/sf/bin/sf", got)
	}
}
