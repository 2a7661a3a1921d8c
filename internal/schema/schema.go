package schema

// FieldDefinition describes one field of a custom metadata type as reported
// by sobject describe. Length is nil when the field type carries no
// meaningful length bound (booleans, numerics, references).
type FieldDefinition struct {
	Name   string
	Length *int
	Lookup bool
}

type Schema struct {
	Object string
	Fields []FieldDefinition
}

func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func (s Schema) HasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
