package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mdtlens/mdtlens/internal/gateway"
	"github.com/rs/zerolog/log"
)

// ErrDiscovery means no type list could be obtained; the run cannot proceed.
var ErrDiscovery = errors.New("type discovery failed")

// Suffix is the naming convention that marks a custom metadata type.
const Suffix = "__mdt"

type metadataRecord struct {
	FullName string `json:"fullName"`
}

// Fetch lists every CustomObject in the org and keeps the custom metadata
// types, preserving the order the org returned them in.
func Fetch(ctx context.Context, runner gateway.Runner) ([]string, error) {
	log.Info().Msg("Querying all Custom Objects from org")
	raw, err := runner.RunJSON(ctx, "org", "list", "metadata", "--metadata-type", "CustomObject")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	var records []metadataRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: unexpected listing shape: %v", ErrDiscovery, err)
	}

	var names []string
	for _, r := range records {
		if strings.HasSuffix(r.FullName, Suffix) {
			names = append(names, r.FullName)
		}
	}
	log.Info().Int("count", len(names)).Msg("Filtered custom metadata types")
	return names, nil
}

// Direct returns the caller-supplied list deduplicated, first occurrence
// winning, order preserved.
func Direct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
