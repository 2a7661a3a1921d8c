package aggregator

import (
	"fmt"
	"unicode/utf8"

	"github.com/mdtlens/mdtlens/internal/query"
	"github.com/mdtlens/mdtlens/internal/schema"
)

// LookupAnnotation marks reference fields in the Type Info column.
const LookupAnnotation = "Lookup"

// FieldStats holds the descriptive statistics for one (type, field) pair.
// Length mirrors the declared bound from the schema and stays nil for
// unbounded field types.
type FieldStats struct {
	Object   string
	Field    string
	Longest  int
	Shortest int
	Length   *int
	Count    int
	TypeInfo string
}

// Aggregate scans every sampled record once per field and tracks the
// shortest and longest textual value lengths. Absent and null values count
// as length 0. Output order matches describe order; Count is the number of
// records sampled for the type regardless of field presence.
func Aggregate(s schema.Schema, records []query.Record) []FieldStats {
	stats := make([]FieldStats, 0, len(s.Fields))
	for _, f := range s.Fields {
		fs := FieldStats{
			Object: s.Object,
			Field:  f.Name,
			Length: f.Length,
			Count:  len(records),
		}
		if f.Lookup {
			fs.TypeInfo = LookupAnnotation
		}
		for i, r := range records {
			n := valueLength(r[f.Name])
			if i == 0 {
				fs.Longest, fs.Shortest = n, n
				continue
			}
			if n > fs.Longest {
				fs.Longest = n
			}
			if n < fs.Shortest {
				fs.Shortest = n
			}
		}
		stats = append(stats, fs)
	}
	return stats
}

// FilterMinLength keeps only rows whose declared length is at least min.
// min <= 0 disables the filter.
func FilterMinLength(stats []FieldStats, min int) []FieldStats {
	if min <= 0 {
		return stats
	}
	var out []FieldStats
	for _, fs := range stats {
		if fs.Length != nil && *fs.Length >= min {
			out = append(out, fs)
		}
	}
	return out
}

func valueLength(v any) int {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(t)
	default:
		return len(fmt.Sprintf("%v", t))
	}
}
