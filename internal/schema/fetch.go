package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mdtlens/mdtlens/internal/gateway"
	"github.com/rs/zerolog/log"
)

// ErrSchema means a single type could not be described; the caller skips the
// type and continues with the rest.
var ErrSchema = errors.New("describe failed")

type describeResult struct {
	Name   string          `json:"name"`
	Fields []describeField `json:"fields"`
}

type describeField struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length int    `json:"length"`
}

// lengthBounded lists the describe field types whose length attribute is a
// real bound on the stored value.
var lengthBounded = map[string]struct{}{
	"string":        {},
	"textarea":      {},
	"picklist":      {},
	"multipicklist": {},
	"email":         {},
	"phone":         {},
	"url":           {},
	"id":            {},
}

// Fetch describes one sObject and returns its fields in describe order.
func Fetch(ctx context.Context, runner gateway.Runner, object string) (Schema, error) {
	log.Info().Str("object", object).Msg("Describing object")
	raw, err := runner.RunJSON(ctx, "sobject", "describe", "--sobject", object)
	if err != nil {
		return Schema{}, fmt.Errorf("%w: %s: %v", ErrSchema, object, err)
	}

	var res describeResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return Schema{}, fmt.Errorf("%w: %s: unexpected describe shape: %v", ErrSchema, object, err)
	}

	s := Schema{Object: object}
	if res.Name != "" {
		s.Object = res.Name
	}
	for _, f := range res.Fields {
		def := FieldDefinition{Name: f.Name, Lookup: f.Type == "reference"}
		if _, ok := lengthBounded[f.Type]; ok && f.Length > 0 {
			length := f.Length
			def.Length = &length
		}
		s.Fields = append(s.Fields, def)
	}
	log.Info().Str("object", s.Object).Int("fields", len(s.Fields)).Msg("Described object")
	return s, nil
}
