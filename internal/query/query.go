package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mdtlens/mdtlens/internal/gateway"
	"github.com/rs/zerolog/log"
)

// ErrQuery means the sample query for a single type failed; the caller skips
// the type and continues with the rest.
var ErrQuery = errors.New("data query failed")

// DefaultLimit bounds the number of records sampled per type. One bound
// applies to every type within a run.
const DefaultLimit = 200

// Record maps field names to the raw values one sampled row carried. Absent
// and null fields are both reported as missing keys by the time the
// aggregator sees the record.
type Record map[string]any

type queryResult struct {
	TotalSize int      `json:"totalSize"`
	Records   []Record `json:"records"`
}

// Limit returns the per-type sample bound, honoring MDTLENS_SAMPLE_LIMIT.
func Limit() int {
	v := os.Getenv("MDTLENS_SAMPLE_LIMIT")
	if v == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("value", v).Int("default", DefaultLimit).Msg("Invalid MDTLENS_SAMPLE_LIMIT, using default")
		return DefaultLimit
	}
	return n
}

// Build assembles the bounded SOQL statement for one type.
func Build(object string, fields []string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s LIMIT %d", strings.Join(fields, ", "), object, limit)
}

// Sample executes the bounded query for one type and returns its rows with
// the SOQL attributes envelope stripped.
func Sample(ctx context.Context, runner gateway.Runner, object string, fields []string, limit int) ([]Record, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no queryable fields", ErrQuery, object)
	}

	soql := Build(object, fields, limit)
	log.Info().Str("query", soql).Msg("Executing sample query")

	raw, err := runner.RunJSON(ctx, "data", "query", "--query", soql)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuery, object, err)
	}

	var res queryResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: %s: unexpected query shape: %v", ErrQuery, object, err)
	}

	for _, r := range res.Records {
		delete(r, "attributes")
	}
	log.Info().Str("object", object).Int("records", len(res.Records)).Msg("Sampled records")
	return res.Records, nil
}
