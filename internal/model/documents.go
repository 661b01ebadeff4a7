package model

// SiteLink connects an item to a page on a site of the wiki family,
// optionally decorated with badge item ids.
type SiteLink interface {
	Title() string
	SiteKey() string
	Badges() []string
}

// EntityDocument is the common contract of item and property documents.
type EntityDocument interface {
	EntityID() EntityIDValue
	RevisionID() int64
}

// TermedDocument is an entity document carrying multilingual terms and
// statements. Labels and descriptions map a language code to a single
// term; aliases map a language code to an ordered term list. The maps
// are exclusively owned by the document and must not be mutated.
type TermedDocument interface {
	EntityDocument
	Labels() map[string]MonolingualTextValue
	Descriptions() map[string]MonolingualTextValue
	Aliases() map[string][]MonolingualTextValue
	// StatementGroups returns the statement groups in document order.
	StatementGroups() []StatementGroup
}

// ItemDocument is the document of an item entity.
type ItemDocument interface {
	TermedDocument
	SiteLinks() map[string]SiteLink
}

// PropertyDocument is the document of a property entity. DatatypeIRI is
// the canonical datatype identifier of the property (see the wire
// package for the mapping to short wire names).
type PropertyDocument interface {
	TermedDocument
	DatatypeIRI() string
}
