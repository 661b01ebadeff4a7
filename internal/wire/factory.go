package wire

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ppiankov/wikibase/internal/model"
)

// placeholderStatementID marks statements synthesized only to carry a
// bare claim. It never appears in serialized output because claims are
// not serialized on their own.
const placeholderStatementID = "empty id 12345"

// Factory builds wire-backed data model objects. Every input of
// arbitrary origin is homogenized through a Converter, so everything a
// factory returns is wire-backed all the way down.
type Factory struct {
	convert *Converter
}

// NewFactory creates a factory.
func NewFactory() *Factory {
	return &Factory{convert: NewConverter()}
}

// ItemID builds an item id. The short id must be "Q" followed by
// digits.
func (f *Factory) ItemID(id, siteIRI string) (*EntityID, error) {
	return newEntityID(model.EntityTypeItem, id, siteIRI)
}

// PropertyID builds a property id. The short id must be "P" followed
// by digits.
func (f *Factory) PropertyID(id, siteIRI string) (*EntityID, error) {
	return newEntityID(model.EntityTypeProperty, id, siteIRI)
}

// String builds a plain string value.
func (f *Factory) String(text string) *String {
	return newString(text)
}

// MonolingualText builds a language-tagged string value.
func (f *Factory) MonolingualText(text, language string) (*MonolingualText, error) {
	return newMonolingualText(text, language)
}

// Time builds a point in time. Precision must be one of the model's
// precision levels; tolerances are non-negative counts of units at that
// precision and the timezone offset is in minutes.
func (f *Factory) Time(year int64, month, day, hour, minute, second int,
	precision model.TimePrecision, before, after, timezone int, calendarModel string) (*Time, error) {
	return newTime(year, month, day, hour, minute, second, precision, before, after, timezone, calendarModel)
}

// GlobeCoordinates builds a globe position. Precision is in degrees
// and must be positive.
func (f *Factory) GlobeCoordinates(latitude, longitude, precision float64, globe string) (*GlobeCoordinates, error) {
	return newGlobeCoordinates(latitude, longitude, precision, globe)
}

// Quantity builds a quantity from canonical decimal strings. Bounds
// must both be given or both empty; unit is an entity IRI or empty for
// dimensionless.
func (f *Factory) Quantity(amount, lowerBound, upperBound, unit string) (*Quantity, error) {
	return newQuantity(amount, lowerBound, upperBound, unit)
}

// wireDatatypeForValueKind infers the snak datatype recorded on the
// wire from the kind of the value itself. Plain strings stay untyped:
// the string kind backs several datatypes (string, url, commonsMedia)
// and the value alone cannot tell them apart.
func wireDatatypeForValueKind(k model.ValueKind) (string, error) {
	switch k {
	case model.KindItemID:
		return DatatypeItem, nil
	case model.KindPropertyID:
		return DatatypeProperty, nil
	case model.KindString:
		return "", nil
	case model.KindMonolingualText:
		return DatatypeMonolingualText, nil
	case model.KindTime:
		return DatatypeTime, nil
	case model.KindGlobeCoordinates:
		return DatatypeGlobeCoordinates, nil
	case model.KindQuantity:
		return DatatypeQuantity, nil
	}
	return "", fmt.Errorf("%w: no datatype for value kind %s", model.ErrUnsupported, k)
}

// ValueSnak builds a value snak. The recorded datatype is inferred
// from the value's kind; whether that value actually suits the
// property's declared datatype is not checked here.
func (f *Factory) ValueSnak(property model.EntityIDValue, value model.Value) (*ValueSnak, error) {
	p, err := f.propertyOf(property)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, fmt.Errorf("%w: nil value", model.ErrInvalidArgument)
	}
	datatype, err := wireDatatypeForValueKind(value.ValueKind())
	if err != nil {
		return nil, err
	}
	v, err := f.convert.CopyValue(value)
	if err != nil {
		return nil, err
	}
	return &ValueSnak{property: p, datatype: datatype, value: v}, nil
}

// SomeValueSnak builds an "unknown value" snak.
func (f *Factory) SomeValueSnak(property model.EntityIDValue) (*SomeValueSnak, error) {
	p, err := f.propertyOf(property)
	if err != nil {
		return nil, err
	}
	return &SomeValueSnak{property: p}, nil
}

// NoValueSnak builds a "no value" snak.
func (f *Factory) NoValueSnak(property model.EntityIDValue) (*NoValueSnak, error) {
	p, err := f.propertyOf(property)
	if err != nil {
		return nil, err
	}
	return &NoValueSnak{property: p}, nil
}

func (f *Factory) propertyOf(property model.EntityIDValue) (*EntityID, error) {
	if property == nil {
		return nil, fmt.Errorf("%w: nil property", model.ErrInvalidArgument)
	}
	if property.EntityType() != model.EntityTypeProperty {
		return nil, fmt.Errorf("%w: %s is not a property id", model.ErrInvalidArgument, property.ID())
	}
	return f.convert.copyEntityID(property)
}

// SnakGroup builds a snak group from snaks that must all share one
// property.
func (f *Factory) SnakGroup(snaks []model.Snak) (model.SnakGroup, error) {
	copied := make([]model.Snak, len(snaks))
	for i, s := range snaks {
		cs, err := f.convert.CopySnak(s)
		if err != nil {
			return model.SnakGroup{}, err
		}
		copied[i] = cs
	}
	return model.NewSnakGroup(copied)
}

// Reference builds a reference from snak groups. Group order is
// preserved; two groups with the same property make the property-keyed
// wire form ambiguous and are rejected.
func (f *Factory) Reference(groups []model.SnakGroup) (*Reference, error) {
	copied, err := f.uniqueSnakGroups(groups)
	if err != nil {
		return nil, err
	}
	return &Reference{groups: copied}, nil
}

func (f *Factory) uniqueSnakGroups(groups []model.SnakGroup) ([]model.SnakGroup, error) {
	copied := make([]model.SnakGroup, 0, len(groups))
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		cg, err := f.convert.CopySnakGroup(g)
		if err != nil {
			return nil, err
		}
		pid := cg.Property().ID()
		if _, dup := seen[pid]; dup {
			return nil, fmt.Errorf("%w: duplicate snak group for property %s", model.ErrInvalidArgument, pid)
		}
		seen[pid] = struct{}{}
		copied = append(copied, cg)
	}
	return copied, nil
}

// Claim builds a bare claim. Claims have no wire form of their own, so
// the result is a placeholder statement exposed through the claim
// interface; it must not be serialized.
func (f *Factory) Claim(subject model.EntityIDValue, mainSnak model.Snak, qualifiers []model.SnakGroup) (model.Claim, error) {
	return f.statementFromParts(subject, mainSnak, qualifiers, nil, model.RankNormal, placeholderStatementID)
}

// Statement builds a statement around an existing claim.
func (f *Factory) Statement(claim model.Claim, references []model.Reference, rank model.Rank, id string) (*Statement, error) {
	if claim == nil {
		return nil, fmt.Errorf("%w: nil claim", model.ErrInvalidArgument)
	}
	return f.statementFromParts(claim.Subject(), claim.MainSnak(), claim.Qualifiers(), references, rank, id)
}

func (f *Factory) statementFromParts(subject model.EntityIDValue, mainSnak model.Snak,
	qualifiers []model.SnakGroup, references []model.Reference, rank model.Rank, id string) (*Statement, error) {
	if subject == nil {
		return nil, fmt.Errorf("%w: nil subject", model.ErrInvalidArgument)
	}
	s, err := f.convert.copyEntityID(subject)
	if err != nil {
		return nil, err
	}
	if mainSnak == nil {
		return nil, fmt.Errorf("%w: nil main snak", model.ErrInvalidArgument)
	}
	main, err := f.convert.CopySnak(mainSnak)
	if err != nil {
		return nil, err
	}
	quals, err := f.uniqueSnakGroups(qualifiers)
	if err != nil {
		return nil, err
	}
	var refs []*Reference
	for _, r := range references {
		ref, err := f.convert.CopyReference(r)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return &Statement{
		id:         id,
		rank:       rank,
		subject:    s,
		mainSnak:   main,
		qualifiers: quals,
		references: refs,
	}, nil
}

// StatementGroup builds a statement group from statements that must
// all share one main-snak property.
func (f *Factory) StatementGroup(statements []model.Statement) (model.StatementGroup, error) {
	copied := make([]model.Statement, len(statements))
	for i, s := range statements {
		cs, err := f.convert.CopyStatement(s)
		if err != nil {
			return model.StatementGroup{}, err
		}
		copied[i] = cs
	}
	return model.NewStatementGroup(copied)
}

// SiteLink builds a site link.
func (f *Factory) SiteLink(title, siteKey string, badges []string) (*SiteLink, error) {
	if siteKey == "" {
		return nil, fmt.Errorf("%w: empty site key", model.ErrInvalidArgument)
	}
	copied := make([]string, len(badges))
	copy(copied, badges)
	return &SiteLink{site: siteKey, title: title, badges: copied}, nil
}

// FreshStatementID mints a new statement id for the given subject, in
// the dump format "<entity id>$<uuid>".
func (f *Factory) FreshStatementID(subject model.EntityIDValue) (string, error) {
	if subject == nil {
		return "", fmt.Errorf("%w: nil subject", model.ErrInvalidArgument)
	}
	return subject.ID() + "$" + uuid.New().String(), nil
}

// ItemDocument builds an item document. Labels and descriptions are
// keyed by language with later terms overwriting earlier ones; aliases
// are grouped by language preserving their order; site links are keyed
// by site.
func (f *Factory) ItemDocument(id model.EntityIDValue,
	labels, descriptions, aliases []model.MonolingualTextValue,
	groups []model.StatementGroup, siteLinks []model.SiteLink, revision int64) (*ItemDocument, error) {
	docID, err := f.documentID(id, model.EntityTypeItem)
	if err != nil {
		return nil, err
	}
	labelMap, err := f.termMap(labels)
	if err != nil {
		return nil, err
	}
	descriptionMap, err := f.termMap(descriptions)
	if err != nil {
		return nil, err
	}
	aliasMap, err := f.aliasMap(aliases)
	if err != nil {
		return nil, err
	}
	copiedGroups, err := f.statementGroups(groups)
	if err != nil {
		return nil, err
	}
	linkMap := make(map[string]model.SiteLink, len(siteLinks))
	for _, l := range siteLinks {
		cl, err := f.convert.CopySiteLink(l)
		if err != nil {
			return nil, err
		}
		linkMap[cl.SiteKey()] = cl
	}
	return &ItemDocument{
		id:           docID,
		labels:       labelMap,
		descriptions: descriptionMap,
		aliases:      aliasMap,
		groups:       copiedGroups,
		siteLinks:    linkMap,
		revision:     revision,
	}, nil
}

// PropertyDocument builds a property document. The datatype is given
// as its canonical IRI and stored as the short wire name.
func (f *Factory) PropertyDocument(id model.EntityIDValue,
	labels, descriptions, aliases []model.MonolingualTextValue,
	groups []model.StatementGroup, datatypeIRI string, revision int64) (*PropertyDocument, error) {
	docID, err := f.documentID(id, model.EntityTypeProperty)
	if err != nil {
		return nil, err
	}
	datatype, err := WireDatatype(datatypeIRI)
	if err != nil {
		return nil, err
	}
	labelMap, err := f.termMap(labels)
	if err != nil {
		return nil, err
	}
	descriptionMap, err := f.termMap(descriptions)
	if err != nil {
		return nil, err
	}
	aliasMap, err := f.aliasMap(aliases)
	if err != nil {
		return nil, err
	}
	copiedGroups, err := f.statementGroups(groups)
	if err != nil {
		return nil, err
	}
	return &PropertyDocument{
		id:           docID,
		labels:       labelMap,
		descriptions: descriptionMap,
		aliases:      aliasMap,
		groups:       copiedGroups,
		datatype:     datatype,
		revision:     revision,
	}, nil
}

func (f *Factory) documentID(id model.EntityIDValue, entityType string) (*EntityID, error) {
	if id == nil {
		return nil, fmt.Errorf("%w: nil entity id", model.ErrInvalidArgument)
	}
	if id.EntityType() != entityType {
		return nil, fmt.Errorf("%w: %s is not of entity type %s", model.ErrInvalidArgument, id.ID(), entityType)
	}
	return f.convert.copyEntityID(id)
}

func (f *Factory) termMap(terms []model.MonolingualTextValue) (map[string]model.MonolingualTextValue, error) {
	out := make(map[string]model.MonolingualTextValue, len(terms))
	for _, t := range terms {
		v, err := f.convert.CopyValue(t)
		if err != nil {
			return nil, err
		}
		term := v.(model.MonolingualTextValue)
		out[term.LanguageCode()] = term
	}
	return out, nil
}

func (f *Factory) aliasMap(terms []model.MonolingualTextValue) (map[string][]model.MonolingualTextValue, error) {
	out := make(map[string][]model.MonolingualTextValue, len(terms))
	for _, t := range terms {
		v, err := f.convert.CopyValue(t)
		if err != nil {
			return nil, err
		}
		term := v.(model.MonolingualTextValue)
		out[term.LanguageCode()] = append(out[term.LanguageCode()], term)
	}
	return out, nil
}

func (f *Factory) statementGroups(groups []model.StatementGroup) ([]model.StatementGroup, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	out := make([]model.StatementGroup, len(groups))
	for i, g := range groups {
		cg, err := f.convert.CopyStatementGroup(g)
		if err != nil {
			return nil, err
		}
		out[i] = cg
	}
	return out, nil
}
