package wire

import (
	"fmt"
	"strings"

	"github.com/ppiankov/wikibase/internal/model"
)

// OntologyPrefix is the namespace of canonical datatype IRIs.
const OntologyPrefix = "http://wikiba.se/ontology#"

// Canonical datatype IRIs of the nine built-in property datatypes.
const (
	DatatypeIRIItem             = OntologyPrefix + "WikibaseItem"
	DatatypeIRIProperty         = OntologyPrefix + "WikibaseProperty"
	DatatypeIRIString           = OntologyPrefix + "String"
	DatatypeIRITime             = OntologyPrefix + "Time"
	DatatypeIRIQuantity         = OntologyPrefix + "Quantity"
	DatatypeIRIGlobeCoordinates = OntologyPrefix + "GlobeCoordinate"
	DatatypeIRIMonolingualText  = OntologyPrefix + "Monolingualtext"
	DatatypeIRIURL              = OntologyPrefix + "Url"
	DatatypeIRICommonsMedia     = OntologyPrefix + "CommonsMedia"
)

// Short wire-format datatype names as they appear in the "datatype"
// field of serialized snaks and property documents.
const (
	DatatypeItem             = "item"
	DatatypeProperty         = "property"
	DatatypeString           = "string"
	DatatypeTime             = "time"
	DatatypeQuantity         = "quantity"
	DatatypeGlobeCoordinates = "globe-coordinate"
	DatatypeMonolingualText  = "monolingualtext"
	DatatypeURL              = "url"
	DatatypeCommonsMedia     = "commonsMedia"
)

// The fixed bijective table. Both directions are package constants and
// are never mutated after initialization.
var wireNameByIRI = map[string]string{
	DatatypeIRIItem:             DatatypeItem,
	DatatypeIRIProperty:         DatatypeProperty,
	DatatypeIRIString:           DatatypeString,
	DatatypeIRITime:             DatatypeTime,
	DatatypeIRIQuantity:         DatatypeQuantity,
	DatatypeIRIGlobeCoordinates: DatatypeGlobeCoordinates,
	DatatypeIRIMonolingualText:  DatatypeMonolingualText,
	DatatypeIRIURL:              DatatypeURL,
	DatatypeIRICommonsMedia:     DatatypeCommonsMedia,
}

var iriByWireName = map[string]string{
	DatatypeItem:             DatatypeIRIItem,
	DatatypeProperty:         DatatypeIRIProperty,
	DatatypeString:           DatatypeIRIString,
	DatatypeTime:             DatatypeIRITime,
	DatatypeQuantity:         DatatypeIRIQuantity,
	DatatypeGlobeCoordinates: DatatypeIRIGlobeCoordinates,
	DatatypeMonolingualText:  DatatypeIRIMonolingualText,
	DatatypeURL:              DatatypeIRIURL,
	DatatypeCommonsMedia:     DatatypeIRICommonsMedia,
}

// WireDatatype maps a canonical datatype IRI to its short wire name.
// IRIs outside the fixed table fall back to a deterministic
// transformation: the IRI must be the ontology prefix followed by a bare
// UpperCamelCase identifier, which is rewritten to kebab-case
// ("...#ExternalId" becomes "external-id"). IRIs not matching that
// pattern fail with model.ErrInvalidArgument.
func WireDatatype(iri string) (string, error) {
	if name, ok := wireNameByIRI[iri]; ok {
		return name, nil
	}
	local, ok := strings.CutPrefix(iri, OntologyPrefix)
	if !ok || local == "" || !isLetters(local) {
		return "", fmt.Errorf("%w: unknown datatype IRI %q", model.ErrInvalidArgument, iri)
	}
	var b strings.Builder
	for i := 0; i < len(local); i++ {
		c := local[i]
		switch {
		case i == 0 && c >= 'A' && c <= 'Z':
			b.WriteByte(c - 'A' + 'a')
		case c >= 'A' && c <= 'Z':
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// DatatypeIRI maps a short wire datatype name back to its canonical
// IRI. Only the fixed table is reversible: the fallback of WireDatatype
// has no registered inverse, so names outside the table fail with
// model.ErrInvalidArgument.
func DatatypeIRI(wireName string) (string, error) {
	if iri, ok := iriByWireName[wireName]; ok {
		return iri, nil
	}
	return "", fmt.Errorf("%w: unknown datatype name %q", model.ErrInvalidArgument, wireName)
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
