package wire

import (
	"github.com/ppiankov/wikibase/internal/model"
)

// DefaultSiteIRI is the knowledge base assumed when reading dumps that
// do not name one (entity JSON carries only short ids).
const DefaultSiteIRI = "http://www.wikidata.org/entity/"

// ItemDocument is the wire-backed item document. All aggregate maps are
// exclusively owned by the document; accessors return them without
// copying and callers must not mutate them.
type ItemDocument struct {
	id           *EntityID
	labels       map[string]model.MonolingualTextValue
	descriptions map[string]model.MonolingualTextValue
	aliases      map[string][]model.MonolingualTextValue
	groups       []model.StatementGroup
	siteLinks    map[string]model.SiteLink
	revision     int64
}

// EntityID implements model.EntityDocument.
func (d *ItemDocument) EntityID() model.EntityIDValue { return d.id }

// RevisionID implements model.EntityDocument.
func (d *ItemDocument) RevisionID() int64 { return d.revision }

// Labels implements model.TermedDocument.
func (d *ItemDocument) Labels() map[string]model.MonolingualTextValue { return d.labels }

// Descriptions implements model.TermedDocument.
func (d *ItemDocument) Descriptions() map[string]model.MonolingualTextValue { return d.descriptions }

// Aliases implements model.TermedDocument.
func (d *ItemDocument) Aliases() map[string][]model.MonolingualTextValue { return d.aliases }

// StatementGroups implements model.TermedDocument. Groups are returned
// in document order.
func (d *ItemDocument) StatementGroups() []model.StatementGroup { return d.groups }

// SiteLinks implements model.ItemDocument.
func (d *ItemDocument) SiteLinks() map[string]model.SiteLink { return d.siteLinks }

// PropertyDocument is the wire-backed property document. The datatype
// is stored as its short wire name, exactly as serialized.
type PropertyDocument struct {
	id           *EntityID
	labels       map[string]model.MonolingualTextValue
	descriptions map[string]model.MonolingualTextValue
	aliases      map[string][]model.MonolingualTextValue
	groups       []model.StatementGroup
	datatype     string
	revision     int64
}

// EntityID implements model.EntityDocument.
func (d *PropertyDocument) EntityID() model.EntityIDValue { return d.id }

// RevisionID implements model.EntityDocument.
func (d *PropertyDocument) RevisionID() int64 { return d.revision }

// Labels implements model.TermedDocument.
func (d *PropertyDocument) Labels() map[string]model.MonolingualTextValue { return d.labels }

// Descriptions implements model.TermedDocument.
func (d *PropertyDocument) Descriptions() map[string]model.MonolingualTextValue { return d.descriptions }

// Aliases implements model.TermedDocument.
func (d *PropertyDocument) Aliases() map[string][]model.MonolingualTextValue { return d.aliases }

// StatementGroups implements model.TermedDocument.
func (d *PropertyDocument) StatementGroups() []model.StatementGroup { return d.groups }

// Datatype returns the short wire datatype name of the property.
func (d *PropertyDocument) Datatype() string { return d.datatype }

// DatatypeIRI implements model.PropertyDocument. Datatype names
// produced by the codec's one-way fallback have no registered IRI; for
// those the result is empty.
func (d *PropertyDocument) DatatypeIRI() string {
	iri, err := DatatypeIRI(d.datatype)
	if err != nil {
		return ""
	}
	return iri
}
