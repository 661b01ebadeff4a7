// Package wire implements the dump-backed representation of the
// Wikibase data model: concrete types whose in-memory layout corresponds
// bit-exactly to the entity JSON of Wikibase dumps, the datatype codec
// mapping canonical datatype IRIs to short wire names, the converter
// that copies foreign implementations into this representation, and the
// factory that is the single construction entry point.
//
// Every node built through the factory is guaranteed to be composed
// entirely of wire-backed types, so an assembled graph serializes
// without further transformation.
package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/wikibase/internal/model"
)

// EntityID is the wire-backed entity id value (item or property).
type EntityID struct {
	entityType string
	id         string
	siteIRI    string
}

func newEntityID(entityType, id, siteIRI string) (*EntityID, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: entity id must not be empty", model.ErrInvalidArgument)
	}
	if siteIRI == "" {
		return nil, fmt.Errorf("%w: site IRI must not be empty", model.ErrInvalidArgument)
	}
	var prefix byte
	switch entityType {
	case model.EntityTypeItem:
		prefix = 'Q'
	case model.EntityTypeProperty:
		prefix = 'P'
	default:
		return nil, fmt.Errorf("%w: unknown entity type %q", model.ErrInvalidArgument, entityType)
	}
	if id[0] != prefix {
		return nil, fmt.Errorf("%w: %s id %q must start with %q", model.ErrInvalidArgument, entityType, id, string(prefix))
	}
	if _, err := strconv.ParseInt(id[1:], 10, 64); err != nil {
		return nil, fmt.Errorf("%w: %s id %q has no numeric part", model.ErrInvalidArgument, entityType, id)
	}
	return &EntityID{entityType: entityType, id: id, siteIRI: siteIRI}, nil
}

// ValueKind implements model.Value.
func (e *EntityID) ValueKind() model.ValueKind {
	if e.entityType == model.EntityTypeItem {
		return model.KindItemID
	}
	return model.KindPropertyID
}

// EntityType returns model.EntityTypeItem or model.EntityTypeProperty.
func (e *EntityID) EntityType() string { return e.entityType }

// ID returns the short identifier, e.g. "Q42" or "P31".
func (e *EntityID) ID() string { return e.id }

// SiteIRI returns the IRI of the owning knowledge base.
func (e *EntityID) SiteIRI() string { return e.siteIRI }

// numericID returns the numeric part of the id.
func (e *EntityID) numericID() int64 {
	n, _ := strconv.ParseInt(e.id[1:], 10, 64)
	return n
}

// String is the wire-backed plain string value.
type String struct {
	text string
}

func newString(text string) *String {
	return &String{text: text}
}

// ValueKind implements model.Value.
func (s *String) ValueKind() model.ValueKind { return model.KindString }

// Text returns the raw string.
func (s *String) Text() string { return s.text }

// MonolingualText is the wire-backed language-tagged string.
type MonolingualText struct {
	text     string
	language string
}

func newMonolingualText(text, language string) (*MonolingualText, error) {
	if language == "" {
		return nil, fmt.Errorf("%w: language code must not be empty", model.ErrInvalidArgument)
	}
	return &MonolingualText{text: text, language: language}, nil
}

// ValueKind implements model.Value.
func (m *MonolingualText) ValueKind() model.ValueKind { return model.KindMonolingualText }

// Text returns the term text.
func (m *MonolingualText) Text() string { return m.text }

// LanguageCode returns the language code.
func (m *MonolingualText) LanguageCode() string { return m.language }

// Time is the wire-backed point in time.
type Time struct {
	year          int64
	month, day    int
	hour, minute  int
	second        int
	precision     model.TimePrecision
	before, after int
	timezone      int
	calendar      string
}

func newTime(year int64, month, day, hour, minute, second int, precision model.TimePrecision, before, after, timezone int, calendar string) (*Time, error) {
	if precision < model.PrecisionBillionYears || precision > model.PrecisionSecond {
		return nil, fmt.Errorf("%w: time precision %d out of range", model.ErrInvalidArgument, precision)
	}
	if calendar == "" {
		return nil, fmt.Errorf("%w: calendar model must not be empty", model.ErrInvalidArgument)
	}
	if month < 0 || month > 12 || day < 0 || day > 31 ||
		hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 60 {
		return nil, fmt.Errorf("%w: time component out of range: %d-%d %d:%d:%d",
			model.ErrInvalidArgument, month, day, hour, minute, second)
	}
	if before < 0 || after < 0 {
		return nil, fmt.Errorf("%w: time tolerances must not be negative", model.ErrInvalidArgument)
	}
	return &Time{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		precision: precision, before: before, after: after,
		timezone: timezone, calendar: calendar,
	}, nil
}

// ValueKind implements model.Value.
func (t *Time) ValueKind() model.ValueKind { return model.KindTime }

// Year returns the signed year; magnitude is not limited to the
// Gregorian range.
func (t *Time) Year() int64 { return t.year }

// Month returns the month, 0 if unspecified at this precision.
func (t *Time) Month() int { return t.month }

// Day returns the day, 0 if unspecified at this precision.
func (t *Time) Day() int { return t.day }

// Hour returns the hour, 0 if unspecified at this precision.
func (t *Time) Hour() int { return t.hour }

// Minute returns the minute, 0 if unspecified at this precision.
func (t *Time) Minute() int { return t.minute }

// Second returns the second, 0 if unspecified at this precision.
func (t *Time) Second() int { return t.second }

// Precision returns the precision code.
func (t *Time) Precision() model.TimePrecision { return t.precision }

// BeforeTolerance returns the uncertainty half-width before the time,
// in precision units.
func (t *Time) BeforeTolerance() int { return t.before }

// AfterTolerance returns the uncertainty half-width after the time, in
// precision units.
func (t *Time) AfterTolerance() int { return t.after }

// TimezoneOffset returns the timezone offset in minutes.
func (t *Time) TimezoneOffset() int { return t.timezone }

// CalendarModel returns the calendar model IRI.
func (t *Time) CalendarModel() string { return t.calendar }

// GlobeCoordinates is the wire-backed globe position.
type GlobeCoordinates struct {
	latitude  float64
	longitude float64
	precision float64
	globe     string
}

func newGlobeCoordinates(latitude, longitude, precision float64, globe string) (*GlobeCoordinates, error) {
	if precision <= 0 {
		return nil, fmt.Errorf("%w: coordinate precision must be positive, got %v", model.ErrInvalidArgument, precision)
	}
	if globe == "" {
		return nil, fmt.Errorf("%w: globe IRI must not be empty", model.ErrInvalidArgument)
	}
	return &GlobeCoordinates{latitude: latitude, longitude: longitude, precision: precision, globe: globe}, nil
}

// ValueKind implements model.Value.
func (g *GlobeCoordinates) ValueKind() model.ValueKind { return model.KindGlobeCoordinates }

// Latitude returns the latitude in degrees.
func (g *GlobeCoordinates) Latitude() float64 { return g.latitude }

// Longitude returns the longitude in degrees.
func (g *GlobeCoordinates) Longitude() float64 { return g.longitude }

// Precision returns the precision in degrees; always positive.
func (g *GlobeCoordinates) Precision() float64 { return g.precision }

// Globe returns the globe IRI.
func (g *GlobeCoordinates) Globe() string { return g.globe }

// Quantity is the wire-backed decimal quantity. Amount and bounds are
// canonical signed decimal strings; empty bounds mean "no bound", an
// empty unit means dimensionless.
type Quantity struct {
	amount string
	lower  string
	upper  string
	unit   string
}

func newQuantity(amount, lower, upper, unit string) (*Quantity, error) {
	amount, err := canonicalDecimal(amount)
	if err != nil {
		return nil, err
	}
	if (lower == "") != (upper == "") {
		return nil, fmt.Errorf("%w: quantity bounds must be given together", model.ErrInvalidArgument)
	}
	if lower != "" {
		if lower, err = canonicalDecimal(lower); err != nil {
			return nil, err
		}
		if upper, err = canonicalDecimal(upper); err != nil {
			return nil, err
		}
		if c, err := model.CompareDecimals(lower, amount); err != nil || c > 0 {
			return nil, fmt.Errorf("%w: lower bound %s exceeds amount %s", model.ErrInvalidArgument, lower, amount)
		}
		if c, err := model.CompareDecimals(amount, upper); err != nil || c > 0 {
			return nil, fmt.Errorf("%w: amount %s exceeds upper bound %s", model.ErrInvalidArgument, amount, upper)
		}
	}
	return &Quantity{amount: amount, lower: lower, upper: upper, unit: unit}, nil
}

// canonicalDecimal validates a decimal string and ensures the explicit
// sign prefix the wire encoding requires.
func canonicalDecimal(s string) (string, error) {
	if _, err := model.ParseDecimal(s); err != nil {
		return "", err
	}
	if !strings.HasPrefix(s, "+") && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s, nil
}

// ValueKind implements model.Value.
func (q *Quantity) ValueKind() model.ValueKind { return model.KindQuantity }

// Amount returns the canonical decimal amount.
func (q *Quantity) Amount() string { return q.amount }

// LowerBound returns the lower bound, empty if absent.
func (q *Quantity) LowerBound() string { return q.lower }

// UpperBound returns the upper bound, empty if absent.
func (q *Quantity) UpperBound() string { return q.upper }

// Unit returns the unit IRI, empty for dimensionless quantities.
func (q *Quantity) Unit() string { return q.unit }
