package model

import "fmt"

// SnakKind discriminates the three snak variants.
type SnakKind int

const (
	SnakValue SnakKind = iota
	SnakSomeValue
	SnakNoValue
)

// String returns the wire name of the snak kind.
func (k SnakKind) String() string {
	switch k {
	case SnakValue:
		return "value"
	case SnakSomeValue:
		return "somevalue"
	case SnakNoValue:
		return "novalue"
	default:
		return "unknown"
	}
}

// Snak is an atomic assertion about a property: a concrete value
// (SnakValue), an unknown value (SnakSomeValue), or the explicit absence
// of a value (SnakNoValue). Property is non-nil in every variant.
type Snak interface {
	SnakKind() SnakKind
	Property() EntityIDValue
}

// ValueSnak is the snak variant carrying a concrete value. Datatype is
// the short wire datatype name of the property; it is empty for plain
// string values, which are untyped on the wire.
type ValueSnak interface {
	Snak
	Datatype() string
	Value() Value
}

// SnakGroup is a non-empty ordered sequence of snaks that all share one
// property. Construct through NewSnakGroup, which enforces both
// invariants; the zero value is not a valid group.
type SnakGroup struct {
	property EntityIDValue
	snaks    []Snak
}

// NewSnakGroup builds a snak group from a non-empty snak sequence,
// validating that every snak uses the same property.
func NewSnakGroup(snaks []Snak) (SnakGroup, error) {
	if len(snaks) == 0 {
		return SnakGroup{}, fmt.Errorf("%w: snak group requires at least one snak", ErrInvalidArgument)
	}
	for i, s := range snaks {
		if s == nil || s.Property() == nil {
			return SnakGroup{}, fmt.Errorf("%w: snak %d has no property", ErrInvalidArgument, i)
		}
	}
	property := snaks[0].Property()
	for i, s := range snaks[1:] {
		if !EntityIDsEqual(s.Property(), property) {
			return SnakGroup{}, fmt.Errorf("%w: snak %d has property %s, group has %s",
				ErrInvalidArgument, i+1, s.Property().ID(), property.ID())
		}
	}
	group := SnakGroup{property: property, snaks: make([]Snak, len(snaks))}
	copy(group.snaks, snaks)
	return group, nil
}

// Property returns the property shared by all snaks in the group.
func (g SnakGroup) Property() EntityIDValue {
	return g.property
}

// Snaks returns the snaks in their original order. The returned slice
// must not be mutated.
func (g SnakGroup) Snaks() []Snak {
	return g.snaks
}

// Len returns the number of snaks in the group.
func (g SnakGroup) Len() int {
	return len(g.snaks)
}
