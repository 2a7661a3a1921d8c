package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"
)

// ErrGateway wraps every failure of an sf CLI invocation: process spawn
// errors, non-zero exits without a parseable envelope, unparseable stdout,
// and envelopes reporting a non-zero status.
var ErrGateway = errors.New("sf cli call failed")

// Runner executes one sf CLI command and returns the parsed result payload.
// The concrete CLI is injected so tests can substitute a fake.
type Runner interface {
	RunJSON(ctx context.Context, args ...string) (json.RawMessage, error)
}

type CLI struct {
	Bin string
}

// NewCLI resolves the sf binary from SF_BIN, defaulting to "sf" on PATH.
// The binary is expected to be already authenticated against an org.
func NewCLI() *CLI {
	bin := os.Getenv("SF_BIN")
	if bin == "" {
		bin = "sf"
	}
	return &CLI{Bin: bin}
}

// envelope is the wrapper sf emits around every --json payload.
type envelope struct {
	Status int             `json:"status"`
	Result json.RawMessage `json:"result"`
}

// RunJSON spawns exactly one sf subprocess with the given arguments plus
// --json, waits for it, and unwraps the result payload. No retries.
func (c *CLI) RunJSON(ctx context.Context, args ...string) (json.RawMessage, error) {
	full := append(append([]string(nil), args...), "--json")
	log.Debug().Str("bin", c.Bin).Strs("args", full).Msg("Invoking sf CLI")

	cmd := exec.CommandContext(ctx, c.Bin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	// sf reports command-level failures through the JSON envelope alongside a
	// non-zero exit, so stdout is parsed before runErr is acted on.
	var env envelope
	if err := json.Unmarshal(stdout.Bytes(), &env); err != nil {
		if runErr != nil {
			return nil, fmt.Errorf("%w: %v: %s", ErrGateway, runErr, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%w: invalid JSON on stdout: %v", ErrGateway, err)
	}
	if env.Status != 0 {
		return nil, fmt.Errorf("%w: envelope status %d", ErrGateway, env.Status)
	}
	return env.Result, nil
}
