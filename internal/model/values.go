// Package model defines the abstract Wikibase data model: values, snaks,
// claims, statements, references, and entity documents.
//
// Everything here is an implementation-agnostic contract. The concrete
// representation that is backed by the dump JSON encoding lives in
// internal/wire; callers are free to bring their own implementations of
// these interfaces and have them converted at the wire boundary.
package model

// ValueKind discriminates the closed set of value variants.
type ValueKind int

const (
	KindItemID ValueKind = iota
	KindPropertyID
	KindString
	KindMonolingualText
	KindTime
	KindGlobeCoordinates
	KindQuantity
)

// String returns the variant name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindItemID:
		return "item-id"
	case KindPropertyID:
		return "property-id"
	case KindString:
		return "string"
	case KindMonolingualText:
		return "monolingual-text"
	case KindTime:
		return "time"
	case KindGlobeCoordinates:
		return "globe-coordinates"
	case KindQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// Value is the common contract of all data values. The kind tag replaces
// the visitor dispatch of older datamodel designs: consumers type-switch
// on the variant interfaces or switch on ValueKind.
type Value interface {
	ValueKind() ValueKind
}

// Entity types used by EntityIDValue.EntityType.
const (
	EntityTypeItem     = "item"
	EntityTypeProperty = "property"
)

// EntityIDValue identifies an entity (item or property) within one
// knowledge base. ID is the short identifier ("Q42", "P31"); SiteIRI is
// the IRI of the owning knowledge base, so that ids from different bases
// never collide.
type EntityIDValue interface {
	Value
	EntityType() string
	ID() string
	SiteIRI() string
}

// EntityIRI returns the full IRI of an entity id (site IRI + local id).
func EntityIRI(id EntityIDValue) string {
	return id.SiteIRI() + id.ID()
}

// StringValue is a plain string without language or datatype semantics.
type StringValue interface {
	Value
	Text() string
}

// MonolingualTextValue is a string in a specific language, used for
// terms (labels, descriptions, aliases) and monolingual-text snak values.
type MonolingualTextValue interface {
	Value
	Text() string
	LanguageCode() string
}

// TimePrecision encodes how much of a time value is significant.
type TimePrecision int

// Time precisions, ordered from coarsest to finest. The numeric values
// are fixed by the wire encoding.
const (
	PrecisionBillionYears         TimePrecision = 0
	PrecisionHundredMillionYears  TimePrecision = 1
	PrecisionTenMillionYears      TimePrecision = 2
	PrecisionMillionYears         TimePrecision = 3
	PrecisionHundredThousandYears TimePrecision = 4
	PrecisionTenThousandYears     TimePrecision = 5
	PrecisionMillennium           TimePrecision = 6
	PrecisionCentury              TimePrecision = 7
	PrecisionDecade               TimePrecision = 8
	PrecisionYear                 TimePrecision = 9
	PrecisionMonth                TimePrecision = 10
	PrecisionDay                  TimePrecision = 11
	PrecisionHour                 TimePrecision = 12
	PrecisionMinute               TimePrecision = 13
	PrecisionSecond               TimePrecision = 14
)

// Common calendar model IRIs.
const (
	CalendarGregorian = "http://www.wikidata.org/entity/Q1985727"
	CalendarJulian    = "http://www.wikidata.org/entity/Q1985786"
)

// TimeValue is a point in time with explicit precision and uncertainty.
// Fields below the precision are zero ("unspecified"). Tolerances are
// uncertainty half-widths counted in units of the precision.
type TimeValue interface {
	Value
	Year() int64
	Month() int
	Day() int
	Hour() int
	Minute() int
	Second() int
	Precision() TimePrecision
	BeforeTolerance() int
	AfterTolerance() int
	// TimezoneOffset is the offset in minutes from UTC.
	TimezoneOffset() int
	CalendarModel() string
}

// GlobeEarth is the default globe IRI for coordinates.
const GlobeEarth = "http://www.wikidata.org/entity/Q2"

// GlobeCoordinatesValue is a position on a globe. Precision is in
// degrees and is always strictly positive.
type GlobeCoordinatesValue interface {
	Value
	Latitude() float64
	Longitude() float64
	Precision() float64
	Globe() string
}

// QuantityValue is an arbitrary-precision decimal quantity with optional
// bounds and a unit. Amount and bounds are canonical signed decimal
// strings (see ParseDecimal); empty bound strings mean "no bound". An
// empty unit means the quantity is dimensionless.
type QuantityValue interface {
	Value
	Amount() string
	LowerBound() string
	UpperBound() string
	Unit() string
}
