package model

import "fmt"

// Rank orders statements within a statement group.
type Rank int

const (
	RankNormal Rank = iota
	RankPreferred
	RankDeprecated
)

// String returns the wire name of the rank.
func (r Rank) String() string {
	switch r {
	case RankPreferred:
		return "preferred"
	case RankDeprecated:
		return "deprecated"
	default:
		return "normal"
	}
}

// ParseRank maps a wire rank name back to a Rank.
func ParseRank(s string) (Rank, error) {
	switch s {
	case "normal":
		return RankNormal, nil
	case "preferred":
		return RankPreferred, nil
	case "deprecated":
		return RankDeprecated, nil
	}
	return RankNormal, fmt.Errorf("%w: unknown rank %q", ErrInvalidArgument, s)
}

// Claim is a subject entity, a main snak, and qualifying snak groups.
type Claim interface {
	Subject() EntityIDValue
	MainSnak() Snak
	Qualifiers() []SnakGroup
}

// Reference is an ordered sequence of snak groups supporting a
// statement. Property ids within the sequence are unique; the sequence
// order is the wire "snaks-order".
type Reference interface {
	SnakGroups() []SnakGroup
}

// Statement is a claim with an id, a rank, and supporting references.
// The id identifies the statement within its subject entity.
type Statement interface {
	Claim
	ID() string
	Rank() Rank
	References() []Reference
}

// StatementGroup is a non-empty ordered sequence of statements whose
// main snaks all share one property. Construct through
// NewStatementGroup; the zero value is not a valid group.
type StatementGroup struct {
	property   EntityIDValue
	statements []Statement
}

// NewStatementGroup builds a statement group from a non-empty statement
// sequence, validating the shared main-snak property invariant.
func NewStatementGroup(statements []Statement) (StatementGroup, error) {
	if len(statements) == 0 {
		return StatementGroup{}, fmt.Errorf("%w: statement group requires at least one statement", ErrInvalidArgument)
	}
	for i, s := range statements {
		if s == nil || s.MainSnak() == nil || s.MainSnak().Property() == nil {
			return StatementGroup{}, fmt.Errorf("%w: statement %d has no main snak property", ErrInvalidArgument, i)
		}
	}
	property := statements[0].MainSnak().Property()
	for i, s := range statements[1:] {
		if !EntityIDsEqual(s.MainSnak().Property(), property) {
			return StatementGroup{}, fmt.Errorf("%w: statement %d has main snak property %s, group has %s",
				ErrInvalidArgument, i+1, s.MainSnak().Property().ID(), property.ID())
		}
	}
	group := StatementGroup{property: property, statements: make([]Statement, len(statements))}
	copy(group.statements, statements)
	return group, nil
}

// Property returns the main-snak property shared by all statements.
func (g StatementGroup) Property() EntityIDValue {
	return g.property
}

// Statements returns the statements in their original order. The
// returned slice must not be mutated.
func (g StatementGroup) Statements() []Statement {
	return g.statements
}

// Len returns the number of statements in the group.
func (g StatementGroup) Len() int {
	return len(g.statements)
}
