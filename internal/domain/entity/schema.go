package entity

import (
	"fmt"
	"strings"
)

// DefaultSeparator is the entity-list separator used when a field does not
// override it. The press-release sheets delimit by comma; the news sheet
// delimits media outlets by semicolon and declares that in its schema.
const DefaultSeparator = ","

// FieldSpec locates one logical dashboard field in a dataset.
// A field is addressed either by column header or, for sheets without
// stable headers, by zero-based position.
type FieldSpec struct {
	Column    string `yaml:"column,omitempty"`    // header name, preferred
	Index     *int   `yaml:"index,omitempty"`     // positional fallback
	Separator string `yaml:"separator,omitempty"` // list separator override
}

// Schema declares which logical fields a dataset carries and where.
// Nil fields are simply absent from that dataset; declared fields are
// required and validated fail-fast at load time.
type Schema struct {
	Title     *FieldSpec `yaml:"title,omitempty"`
	Reference *FieldSpec `yaml:"reference,omitempty"`
	Entities  *FieldSpec `yaml:"entities,omitempty"`
	Date      *FieldSpec `yaml:"date,omitempty"`
	Location  *FieldSpec `yaml:"location,omitempty"`
}

// ResolvedField is a schema field bound to a concrete column header.
// The zero value means the field is absent from the dataset.
type ResolvedField struct {
	Column    string
	Separator string
}

// Present reports whether the field exists in the resolved schema.
func (f ResolvedField) Present() bool { return f.Column != "" }

// ResolvedSchema is a Schema bound to the header row of a loaded dataset.
// All downstream operations address columns through it; positional access
// happens exactly once, here.
type ResolvedSchema struct {
	Title     ResolvedField
	Reference ResolvedField
	Entities  ResolvedField
	Date      ResolvedField
	Location  ResolvedField
}

// Resolve binds the schema against a dataset's header row.
// Every declared field must resolve; a missing column is a hard error so
// that misconfigured sheets fail at load time instead of rendering empty
// panels with no explanation.
func (s Schema) Resolve(columns []string) (*ResolvedSchema, error) {
	out := &ResolvedSchema{}
	fields := []struct {
		name string
		spec *FieldSpec
		dst  *ResolvedField
	}{
		{"title", s.Title, &out.Title},
		{"reference", s.Reference, &out.Reference},
		{"entities", s.Entities, &out.Entities},
		{"date", s.Date, &out.Date},
		{"location", s.Location, &out.Location},
	}

	for _, f := range fields {
		if f.spec == nil {
			continue
		}
		col, err := resolveColumn(*f.spec, columns)
		if err != nil {
			return nil, fmt.Errorf("resolve field %q: %w", f.name, err)
		}
		sep := f.spec.Separator
		if sep == "" {
			sep = DefaultSeparator
		}
		*f.dst = ResolvedField{Column: col, Separator: sep}
	}

	return out, nil
}

// resolveColumn locates a single column by header name or position.
func resolveColumn(spec FieldSpec, columns []string) (string, error) {
	if spec.Column != "" {
		want := strings.TrimSpace(spec.Column)
		for _, c := range columns {
			if c == want {
				return c, nil
			}
		}
		return "", fmt.Errorf("column %q: %w", spec.Column, ErrColumnMissing)
	}

	if spec.Index != nil {
		if *spec.Index < 0 || *spec.Index >= len(columns) {
			return "", fmt.Errorf("index %d out of range (dataset has %d columns): %w",
				*spec.Index, len(columns), ErrColumnMissing)
		}
		return columns[*spec.Index], nil
	}

	return "", fmt.Errorf("field declares neither column nor index: %w", ErrInvalidSchema)
}
