package model

import "testing"

// fakeString implements StringValue
type fakeString struct {
	text string
}

func (f *fakeString) ValueKind() ValueKind { return KindString }
func (f *fakeString) Text() string         { return f.text }

// fakeValueSnak implements ValueSnak
type fakeValueSnak struct {
	property EntityIDValue
	datatype string
	value    Value
}

func (f *fakeValueSnak) SnakKind() SnakKind      { return SnakValue }
func (f *fakeValueSnak) Property() EntityIDValue { return f.property }
func (f *fakeValueSnak) Datatype() string        { return f.datatype }
func (f *fakeValueSnak) Value() Value            { return f.value }

// fakeStatement implements Statement
type fakeStatement struct {
	id         string
	rank       Rank
	subject    EntityIDValue
	mainSnak   Snak
	qualifiers []SnakGroup
	references []Reference
}

func (f *fakeStatement) ID() string              { return f.id }
func (f *fakeStatement) Rank() Rank              { return f.rank }
func (f *fakeStatement) Subject() EntityIDValue  { return f.subject }
func (f *fakeStatement) MainSnak() Snak          { return f.mainSnak }
func (f *fakeStatement) Qualifiers() []SnakGroup { return f.qualifiers }
func (f *fakeStatement) References() []Reference { return f.references }

func TestEntityIDsEqual(t *testing.T) {
	a := item("Q42")
	b := item("Q42")
	if !EntityIDsEqual(a, b) {
		t.Error("identical ids must compare equal")
	}

	if EntityIDsEqual(a, item("Q43")) {
		t.Error("different ids must not compare equal")
	}

	other := &fakeEntityID{entityType: EntityTypeItem, id: "Q42", siteIRI: "http://example.org/entity/"}
	if EntityIDsEqual(a, other) {
		t.Error("same id of a different knowledge base must not compare equal")
	}

	if !EntityIDsEqual(nil, nil) {
		t.Error("two nil ids compare equal")
	}
	if EntityIDsEqual(a, nil) {
		t.Error("nil and non-nil must not compare equal")
	}
}

func TestValuesEqual_DifferentKinds(t *testing.T) {
	if ValuesEqual(item("Q42"), &fakeString{text: "Q42"}) {
		t.Error("values of different kinds must not compare equal")
	}
}

// kindLiar reports a kind it does not implement
type kindLiar struct{}

func (l *kindLiar) ValueKind() ValueKind { return KindQuantity }

func TestValuesEqual_KindWithoutInterface(t *testing.T) {
	// A value whose kind claims an interface it does not implement is
	// never equal, not a panic.
	if ValuesEqual(&kindLiar{}, &kindLiar{}) {
		t.Error("values not implementing their claimed kind must not compare equal")
	}
	if ValuesEqual(&kindLiar{}, &fakeString{text: "x"}) {
		t.Error("mismatched kinds must not compare equal")
	}

	// Hashing degrades to the kind tag instead of panicking.
	if HashValue(&kindLiar{}) == HashValue(&fakeString{text: "x"}) {
		t.Error("distinct kinds should hash differently")
	}

	lying := &fakeSnak{kind: SnakValue, property: property("P31")}
	honest := &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")}
	if SnaksEqual(lying, honest) {
		t.Error("a value-kind snak without the value snak interface must not compare equal")
	}
}

func TestSnaksEqual(t *testing.T) {
	a := &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")}
	b := &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")}
	if !SnaksEqual(a, b) {
		t.Error("structurally identical value snaks must compare equal")
	}

	c := &fakeValueSnak{property: property("P31"), datatype: "", value: item("Q5")}
	if SnaksEqual(a, c) {
		t.Error("snaks with different datatypes must not compare equal")
	}

	someA := &fakeSnak{kind: SnakSomeValue, property: property("P31")}
	someB := &fakeSnak{kind: SnakSomeValue, property: property("P31")}
	if !SnaksEqual(someA, someB) {
		t.Error("some-value snaks with the same property must compare equal")
	}
	if SnaksEqual(someA, a) {
		t.Error("snaks of different kinds must not compare equal")
	}
}

func TestStatementsEqual(t *testing.T) {
	mk := func() *fakeStatement {
		return &fakeStatement{
			id:       "Q42$deadbeef",
			rank:     RankNormal,
			subject:  item("Q42"),
			mainSnak: &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")},
		}
	}

	if !StatementsEqual(mk(), mk()) {
		t.Error("structurally identical statements must compare equal")
	}

	other := mk()
	other.rank = RankPreferred
	if StatementsEqual(mk(), other) {
		t.Error("statements with different ranks must not compare equal")
	}

	renamed := mk()
	renamed.id = "Q42$cafebabe"
	if StatementsEqual(mk(), renamed) {
		t.Error("statements with different ids must not compare equal")
	}
}

func TestHashValue_ConsistentWithEquality(t *testing.T) {
	a := item("Q42")
	b := item("Q42")
	if HashValue(a) != HashValue(b) {
		t.Error("equal values must hash identically")
	}

	if HashValue(a) == HashValue(item("Q43")) {
		t.Error("distinct ids should hash differently")
	}

	if HashValue(&fakeString{text: "x"}) == HashValue(&fakeString{text: "y"}) {
		t.Error("distinct strings should hash differently")
	}
}

func TestHashSnak_ConsistentWithEquality(t *testing.T) {
	a := &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")}
	b := &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")}
	if HashSnak(a) != HashSnak(b) {
		t.Error("equal snaks must hash identically")
	}

	c := &fakeSnak{kind: SnakNoValue, property: property("P31")}
	if HashSnak(a) == HashSnak(c) {
		t.Error("snaks of different kinds should hash differently")
	}
}

func TestHashStatement_ConsistentWithEquality(t *testing.T) {
	mk := func(rank Rank) *fakeStatement {
		return &fakeStatement{
			id:       "Q42$deadbeef",
			rank:     rank,
			subject:  item("Q42"),
			mainSnak: &fakeValueSnak{property: property("P31"), datatype: "item", value: item("Q5")},
		}
	}

	if HashStatement(mk(RankNormal)) != HashStatement(mk(RankNormal)) {
		t.Error("equal statements must hash identically")
	}
	if HashStatement(mk(RankNormal)) == HashStatement(mk(RankDeprecated)) {
		t.Error("statements with different ranks should hash differently")
	}
}
