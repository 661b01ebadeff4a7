package wire

import (
	"github.com/ppiankov/wikibase/internal/model"
)

// ValueSnak is the wire-backed snak carrying a concrete value. Its
// value is always a wire-backed type; the datatype field holds the
// short wire datatype name (empty for untyped plain strings).
type ValueSnak struct {
	property *EntityID
	datatype string
	value    model.Value
}

// SnakKind implements model.Snak.
func (s *ValueSnak) SnakKind() model.SnakKind { return model.SnakValue }

// Property implements model.Snak.
func (s *ValueSnak) Property() model.EntityIDValue { return s.property }

// Datatype returns the short wire datatype name.
func (s *ValueSnak) Datatype() string { return s.datatype }

// Value returns the wire-backed value.
func (s *ValueSnak) Value() model.Value { return s.value }

// SomeValueSnak is the wire-backed "unknown value" snak.
type SomeValueSnak struct {
	property *EntityID
}

// SnakKind implements model.Snak.
func (s *SomeValueSnak) SnakKind() model.SnakKind { return model.SnakSomeValue }

// Property implements model.Snak.
func (s *SomeValueSnak) Property() model.EntityIDValue { return s.property }

// NoValueSnak is the wire-backed "no value" snak.
type NoValueSnak struct {
	property *EntityID
}

// SnakKind implements model.Snak.
func (s *NoValueSnak) SnakKind() model.SnakKind { return model.SnakNoValue }

// Property implements model.Snak.
func (s *NoValueSnak) Property() model.EntityIDValue { return s.property }
