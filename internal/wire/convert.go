package wire

import (
	"fmt"

	"github.com/ppiankov/wikibase/internal/model"
)

// Converter copies data model objects of arbitrary origin into
// wire-backed ones. Objects that are already wire-backed are returned
// unchanged, so repeated conversion is cheap and idempotent; foreign
// implementations are deep-copied through their accessor interfaces.
type Converter struct{}

// NewConverter creates a converter.
func NewConverter() *Converter {
	return &Converter{}
}

// CopyValue returns a wire-backed rendition of v.
func (c *Converter) CopyValue(v model.Value) (model.Value, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", model.ErrInvalidArgument)
	}
	switch v.(type) {
	case *EntityID, *String, *MonolingualText, *Time, *GlobeCoordinates, *Quantity:
		return v, nil
	}
	switch v.ValueKind() {
	case model.KindItemID, model.KindPropertyID:
		id, ok := v.(model.EntityIDValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return c.copyEntityID(id)
	case model.KindString:
		sv, ok := v.(model.StringValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return newString(sv.Text()), nil
	case model.KindMonolingualText:
		mv, ok := v.(model.MonolingualTextValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return newMonolingualText(mv.Text(), mv.LanguageCode())
	case model.KindTime:
		tv, ok := v.(model.TimeValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return newTime(tv.Year(), tv.Month(), tv.Day(), tv.Hour(), tv.Minute(), tv.Second(),
			tv.Precision(), tv.BeforeTolerance(), tv.AfterTolerance(), tv.TimezoneOffset(), tv.CalendarModel())
	case model.KindGlobeCoordinates:
		gv, ok := v.(model.GlobeCoordinatesValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return newGlobeCoordinates(gv.Latitude(), gv.Longitude(), gv.Precision(), gv.Globe())
	case model.KindQuantity:
		qv, ok := v.(model.QuantityValue)
		if !ok {
			return nil, unsupportedValue(v)
		}
		return newQuantity(qv.Amount(), qv.LowerBound(), qv.UpperBound(), qv.Unit())
	}
	return nil, unsupportedValue(v)
}

func unsupportedValue(v model.Value) error {
	return fmt.Errorf("%w: cannot convert value of kind %s (%T)", model.ErrUnsupported, v.ValueKind(), v)
}

func (c *Converter) copyEntityID(id model.EntityIDValue) (*EntityID, error) {
	if wireID, ok := id.(*EntityID); ok {
		return wireID, nil
	}
	return newEntityID(id.EntityType(), id.ID(), id.SiteIRI())
}

// CopySnak returns a wire-backed rendition of s.
func (c *Converter) CopySnak(s model.Snak) (model.Snak, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snak", model.ErrInvalidArgument)
	}
	switch s.(type) {
	case *ValueSnak, *SomeValueSnak, *NoValueSnak:
		return s, nil
	}
	property, err := c.copyEntityID(s.Property())
	if err != nil {
		return nil, err
	}
	switch s.SnakKind() {
	case model.SnakValue:
		vs, ok := s.(model.ValueSnak)
		if !ok {
			return nil, fmt.Errorf("%w: cannot convert value snak %T", model.ErrUnsupported, s)
		}
		value, err := c.CopyValue(vs.Value())
		if err != nil {
			return nil, err
		}
		return &ValueSnak{property: property, datatype: vs.Datatype(), value: value}, nil
	case model.SnakSomeValue:
		return &SomeValueSnak{property: property}, nil
	case model.SnakNoValue:
		return &NoValueSnak{property: property}, nil
	}
	return nil, fmt.Errorf("%w: cannot convert snak %T", model.ErrUnsupported, s)
}

// CopySnakGroup homogenizes every member of g. If no member needed
// copying the group is returned as is.
func (c *Converter) CopySnakGroup(g model.SnakGroup) (model.SnakGroup, error) {
	snaks := g.Snaks()
	copied := make([]model.Snak, len(snaks))
	changed := false
	for i, s := range snaks {
		cs, err := c.CopySnak(s)
		if err != nil {
			return model.SnakGroup{}, err
		}
		if cs != s {
			changed = true
		}
		copied[i] = cs
	}
	if !changed {
		return g, nil
	}
	return model.NewSnakGroup(copied)
}

func (c *Converter) copySnakGroups(groups []model.SnakGroup) ([]model.SnakGroup, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	out := make([]model.SnakGroup, len(groups))
	for i, g := range groups {
		cg, err := c.CopySnakGroup(g)
		if err != nil {
			return nil, err
		}
		out[i] = cg
	}
	if err := distinctGroupProperties(out); err != nil {
		return nil, err
	}
	return out, nil
}

// distinctGroupProperties rejects group sequences with a repeated
// property. Such sequences have no property-keyed wire form.
func distinctGroupProperties(groups []model.SnakGroup) error {
	seen := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		pid := g.Property().ID()
		if _, dup := seen[pid]; dup {
			return fmt.Errorf("%w: duplicate snak group for property %s", model.ErrInvalidArgument, pid)
		}
		seen[pid] = struct{}{}
	}
	return nil
}

// CopyReference returns a wire-backed rendition of r.
func (c *Converter) CopyReference(r model.Reference) (*Reference, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reference", model.ErrInvalidArgument)
	}
	if wireRef, ok := r.(*Reference); ok {
		return wireRef, nil
	}
	groups, err := c.copySnakGroups(r.SnakGroups())
	if err != nil {
		return nil, err
	}
	return &Reference{groups: groups}, nil
}

// CopyStatement returns a wire-backed rendition of s.
func (c *Converter) CopyStatement(s model.Statement) (*Statement, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil statement", model.ErrInvalidArgument)
	}
	if wireStatement, ok := s.(*Statement); ok {
		return wireStatement, nil
	}
	subject, err := c.copyEntityID(s.Subject())
	if err != nil {
		return nil, err
	}
	mainSnak, err := c.CopySnak(s.MainSnak())
	if err != nil {
		return nil, err
	}
	qualifiers, err := c.copySnakGroups(s.Qualifiers())
	if err != nil {
		return nil, err
	}
	var references []*Reference
	for _, r := range s.References() {
		ref, err := c.CopyReference(r)
		if err != nil {
			return nil, err
		}
		references = append(references, ref)
	}
	return &Statement{
		id:         s.ID(),
		rank:       s.Rank(),
		subject:    subject,
		mainSnak:   mainSnak,
		qualifiers: qualifiers,
		references: references,
	}, nil
}

// CopyStatementGroup homogenizes every statement of g. If no statement
// needed copying the group is returned as is.
func (c *Converter) CopyStatementGroup(g model.StatementGroup) (model.StatementGroup, error) {
	statements := g.Statements()
	copied := make([]model.Statement, len(statements))
	changed := false
	for i, s := range statements {
		cs, err := c.CopyStatement(s)
		if err != nil {
			return model.StatementGroup{}, err
		}
		if model.Statement(cs) != s {
			changed = true
		}
		copied[i] = cs
	}
	if !changed {
		return g, nil
	}
	return model.NewStatementGroup(copied)
}

// CopySiteLink returns a wire-backed rendition of l.
func (c *Converter) CopySiteLink(l model.SiteLink) (*SiteLink, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil site link", model.ErrInvalidArgument)
	}
	if wireLink, ok := l.(*SiteLink); ok {
		return wireLink, nil
	}
	badges := l.Badges()
	copied := make([]string, len(badges))
	copy(copied, badges)
	return &SiteLink{site: l.SiteKey(), title: l.Title(), badges: copied}, nil
}
