package wire

import (
	"errors"
	"testing"

	"github.com/ppiankov/wikibase/internal/model"
)

// foreignString is a non-wire StringValue implementation
type foreignString struct {
	text string
}

func (f *foreignString) ValueKind() model.ValueKind { return model.KindString }
func (f *foreignString) Text() string               { return f.text }

// foreignEntityID is a non-wire EntityIDValue implementation
type foreignEntityID struct {
	entityType string
	id         string
	siteIRI    string
}

func (f *foreignEntityID) ValueKind() model.ValueKind {
	if f.entityType == model.EntityTypeProperty {
		return model.KindPropertyID
	}
	return model.KindItemID
}

func (f *foreignEntityID) EntityType() string { return f.entityType }
func (f *foreignEntityID) ID() string         { return f.id }
func (f *foreignEntityID) SiteIRI() string    { return f.siteIRI }

// liar claims a kind it does not implement
type liar struct{}

func (l *liar) ValueKind() model.ValueKind { return model.KindQuantity }

func TestConverter_IdentityFastPath(t *testing.T) {
	c := NewConverter()
	original := newString("hello")

	copied, err := c.CopyValue(original)
	if err != nil {
		t.Fatalf("CopyValue failed: %v", err)
	}
	if copied != model.Value(original) {
		t.Error("wire-backed value must be returned unchanged")
	}
}

func TestConverter_CopiesForeignValues(t *testing.T) {
	c := NewConverter()

	copied, err := c.CopyValue(&foreignString{text: "hello"})
	if err != nil {
		t.Fatalf("CopyValue failed: %v", err)
	}
	if _, ok := copied.(*String); !ok {
		t.Fatalf("expected *String, got %T", copied)
	}
	if copied.(*String).Text() != "hello" {
		t.Errorf("text lost: %q", copied.(*String).Text())
	}

	id, err := c.CopyValue(&foreignEntityID{entityType: model.EntityTypeItem, id: "Q42", siteIRI: DefaultSiteIRI})
	if err != nil {
		t.Fatalf("CopyValue failed: %v", err)
	}
	if _, ok := id.(*EntityID); !ok {
		t.Fatalf("expected *EntityID, got %T", id)
	}
}

func TestConverter_Idempotent(t *testing.T) {
	c := NewConverter()

	first, err := c.CopyValue(&foreignString{text: "x"})
	if err != nil {
		t.Fatalf("CopyValue failed: %v", err)
	}
	second, err := c.CopyValue(first)
	if err != nil {
		t.Fatalf("CopyValue failed: %v", err)
	}
	if first != second {
		t.Error("converting a converted value must be the identity")
	}
}

func TestConverter_RejectsUnsupported(t *testing.T) {
	c := NewConverter()

	if _, err := c.CopyValue(&liar{}); !errors.Is(err, model.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for value lying about its kind, got %v", err)
	}
	if _, err := c.CopyValue(nil); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil value, got %v", err)
	}
}

// foreignSnak is a non-wire value snak
type foreignSnak struct {
	property model.EntityIDValue
	datatype string
	value    model.Value
}

func (f *foreignSnak) SnakKind() model.SnakKind      { return model.SnakValue }
func (f *foreignSnak) Property() model.EntityIDValue { return f.property }
func (f *foreignSnak) Datatype() string              { return f.datatype }
func (f *foreignSnak) Value() model.Value            { return f.value }

func TestConverter_CopySnak(t *testing.T) {
	c := NewConverter()
	foreign := &foreignSnak{
		property: &foreignEntityID{entityType: model.EntityTypeProperty, id: "P31", siteIRI: DefaultSiteIRI},
		datatype: "item",
		value:    &foreignEntityID{entityType: model.EntityTypeItem, id: "Q5", siteIRI: DefaultSiteIRI},
	}

	copied, err := c.CopySnak(foreign)
	if err != nil {
		t.Fatalf("CopySnak failed: %v", err)
	}
	vs, ok := copied.(*ValueSnak)
	if !ok {
		t.Fatalf("expected *ValueSnak, got %T", copied)
	}
	if vs.Datatype() != "item" {
		t.Errorf("datatype lost: %q", vs.Datatype())
	}
	if !model.SnaksEqual(foreign, vs) {
		t.Error("copy must be structurally equal to the original")
	}

	// Copy of a wire snak is the identity
	again, err := c.CopySnak(vs)
	if err != nil {
		t.Fatalf("CopySnak failed: %v", err)
	}
	if again != model.Snak(vs) {
		t.Error("wire-backed snak must be returned unchanged")
	}
}

func TestConverter_CopySnakGroup_UnchangedGroupReturnedAsIs(t *testing.T) {
	c := NewConverter()
	f := NewFactory()
	p31, _ := f.PropertyID("P31", DefaultSiteIRI)
	snak, _ := f.SomeValueSnak(p31)
	group, err := f.SnakGroup([]model.Snak{snak})
	if err != nil {
		t.Fatalf("SnakGroup failed: %v", err)
	}

	copied, err := c.CopySnakGroup(group)
	if err != nil {
		t.Fatalf("CopySnakGroup failed: %v", err)
	}
	if !model.SnakGroupsEqual(group, copied) {
		t.Error("copied group differs from original")
	}
}

// foreignReference is a non-wire reference
type foreignReference struct {
	groups []model.SnakGroup
}

func (f *foreignReference) SnakGroups() []model.SnakGroup { return f.groups }

func TestConverter_CopyReference_RejectsDuplicateProperties(t *testing.T) {
	c := NewConverter()
	f := NewFactory()
	p31, _ := f.PropertyID("P31", DefaultSiteIRI)
	snak, _ := f.SomeValueSnak(p31)
	group, err := f.SnakGroup([]model.Snak{snak})
	if err != nil {
		t.Fatalf("SnakGroup failed: %v", err)
	}

	dup := &foreignReference{groups: []model.SnakGroup{group, group}}
	if _, err := c.CopyReference(dup); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("duplicate group property should be rejected, got %v", err)
	}

	// The same reference must not slip in through statement
	// homogenization either.
	subject, _ := f.ItemID("Q42", DefaultSiteIRI)
	claim, _ := f.Claim(subject, snak, nil)
	if _, err := f.Statement(claim, []model.Reference{dup}, model.RankNormal, "Q42$1"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("statement with duplicate reference groups should be rejected, got %v", err)
	}

	ok := &foreignReference{groups: []model.SnakGroup{group}}
	copied, err := c.CopyReference(ok)
	if err != nil {
		t.Fatalf("CopyReference failed: %v", err)
	}
	if !model.ReferencesEqual(ok, copied) {
		t.Error("copied reference differs from original")
	}
}

func TestConverter_CopyStatement(t *testing.T) {
	c := NewConverter()
	f := NewFactory()
	subject, _ := f.ItemID("Q42", DefaultSiteIRI)
	p31, _ := f.PropertyID("P31", DefaultSiteIRI)
	snak, _ := f.SomeValueSnak(p31)
	claim, _ := f.Claim(subject, snak, nil)
	statement, _ := f.Statement(claim, nil, model.RankNormal, "Q42$1")

	// Identity fast path
	copied, err := c.CopyStatement(statement)
	if err != nil {
		t.Fatalf("CopyStatement failed: %v", err)
	}
	if copied != statement {
		t.Error("wire-backed statement must be returned unchanged")
	}
}
