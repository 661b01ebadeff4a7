package wire

import (
	"github.com/ppiankov/wikibase/internal/model"
)

// Reference is the wire-backed statement reference: an ordered sequence
// of snak groups with unique properties. On the wire it is a
// property-to-snak-list object plus the parallel "snaks-order" list;
// both are derived from the group sequence, which keeps the two in 1:1
// correspondence by construction.
type Reference struct {
	groups []model.SnakGroup
}

// SnakGroups implements model.Reference.
func (r *Reference) SnakGroups() []model.SnakGroup { return r.groups }

// Statement is the wire-backed statement. The subject is carried in
// memory only: on the wire a statement lives inside its subject's
// document, which re-establishes the subject when reading.
type Statement struct {
	id         string
	rank       model.Rank
	subject    *EntityID
	mainSnak   model.Snak
	qualifiers []model.SnakGroup
	references []*Reference
}

// ID implements model.Statement.
func (s *Statement) ID() string { return s.id }

// Rank implements model.Statement.
func (s *Statement) Rank() model.Rank { return s.rank }

// Subject implements model.Claim.
func (s *Statement) Subject() model.EntityIDValue { return s.subject }

// MainSnak implements model.Claim.
func (s *Statement) MainSnak() model.Snak { return s.mainSnak }

// Qualifiers implements model.Claim.
func (s *Statement) Qualifiers() []model.SnakGroup { return s.qualifiers }

// References implements model.Statement.
func (s *Statement) References() []model.Reference {
	refs := make([]model.Reference, len(s.references))
	for i, r := range s.references {
		refs[i] = r
	}
	return refs
}

// SiteLink is the wire-backed site link.
type SiteLink struct {
	site   string
	title  string
	badges []string
}

// Title implements model.SiteLink.
func (l *SiteLink) Title() string { return l.title }

// SiteKey implements model.SiteLink.
func (l *SiteLink) SiteKey() string { return l.site }

// Badges implements model.SiteLink.
func (l *SiteLink) Badges() []string { return l.badges }
