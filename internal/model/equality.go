package model

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Structural equality over the abstract interfaces. Two values compare
// equal based only on their getter contracts, so instances from
// different implementations (wire-backed or foreign) compare
// consistently. Quantity amounts and bounds compare by their canonical
// lexical form, not numerically.

// EntityIDsEqual reports whether two entity ids denote the same entity
// of the same knowledge base.
func EntityIDsEqual(a, b EntityIDValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.EntityType() == b.EntityType() && a.ID() == b.ID() && a.SiteIRI() == b.SiteIRI()
}

// ValuesEqual reports structural equality of two values.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ValueKind() != b.ValueKind() {
		return false
	}
	// A value reporting a kind without implementing the matching
	// variant interface is never equal to anything.
	switch a.ValueKind() {
	case KindItemID, KindPropertyID:
		av, aok := a.(EntityIDValue)
		bv, bok := b.(EntityIDValue)
		return aok && bok && EntityIDsEqual(av, bv)
	case KindString:
		av, aok := a.(StringValue)
		bv, bok := b.(StringValue)
		return aok && bok && av.Text() == bv.Text()
	case KindMonolingualText:
		av, aok := a.(MonolingualTextValue)
		bv, bok := b.(MonolingualTextValue)
		return aok && bok && av.Text() == bv.Text() && av.LanguageCode() == bv.LanguageCode()
	case KindTime:
		av, aok := a.(TimeValue)
		bv, bok := b.(TimeValue)
		return aok && bok &&
			av.Year() == bv.Year() && av.Month() == bv.Month() && av.Day() == bv.Day() &&
			av.Hour() == bv.Hour() && av.Minute() == bv.Minute() && av.Second() == bv.Second() &&
			av.Precision() == bv.Precision() &&
			av.BeforeTolerance() == bv.BeforeTolerance() && av.AfterTolerance() == bv.AfterTolerance() &&
			av.TimezoneOffset() == bv.TimezoneOffset() && av.CalendarModel() == bv.CalendarModel()
	case KindGlobeCoordinates:
		av, aok := a.(GlobeCoordinatesValue)
		bv, bok := b.(GlobeCoordinatesValue)
		return aok && bok &&
			av.Latitude() == bv.Latitude() && av.Longitude() == bv.Longitude() &&
			av.Precision() == bv.Precision() && av.Globe() == bv.Globe()
	case KindQuantity:
		av, aok := a.(QuantityValue)
		bv, bok := b.(QuantityValue)
		return aok && bok &&
			av.Amount() == bv.Amount() && av.LowerBound() == bv.LowerBound() &&
			av.UpperBound() == bv.UpperBound() && av.Unit() == bv.Unit()
	}
	return false
}

// SnaksEqual reports structural equality of two snaks.
func SnaksEqual(a, b Snak) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.SnakKind() != b.SnakKind() || !EntityIDsEqual(a.Property(), b.Property()) {
		return false
	}
	if a.SnakKind() != SnakValue {
		return true
	}
	av, aok := a.(ValueSnak)
	bv, bok := b.(ValueSnak)
	return aok && bok && av.Datatype() == bv.Datatype() && ValuesEqual(av.Value(), bv.Value())
}

// SnakGroupsEqual reports equality of two snak groups as ordered
// sequences.
func SnakGroupsEqual(a, b SnakGroup) bool {
	if len(a.snaks) != len(b.snaks) {
		return false
	}
	for i := range a.snaks {
		if !SnaksEqual(a.snaks[i], b.snaks[i]) {
			return false
		}
	}
	return true
}

func snakGroupListsEqual(a, b []SnakGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SnakGroupsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ClaimsEqual reports structural equality of subject, main snak, and
// qualifier sequence.
func ClaimsEqual(a, b Claim) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return EntityIDsEqual(a.Subject(), b.Subject()) &&
		SnaksEqual(a.MainSnak(), b.MainSnak()) &&
		snakGroupListsEqual(a.Qualifiers(), b.Qualifiers())
}

// ReferencesEqual reports equality of two references as ordered snak
// group sequences.
func ReferencesEqual(a, b Reference) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return snakGroupListsEqual(a.SnakGroups(), b.SnakGroups())
}

// StatementsEqual reports structural equality: id, rank, claim
// (recursively), and the reference sequence in order.
func StatementsEqual(a, b Statement) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.ID() != b.ID() || a.Rank() != b.Rank() || !ClaimsEqual(a, b) {
		return false
	}
	ar, br := a.References(), b.References()
	if len(ar) != len(br) {
		return false
	}
	for i := range ar {
		if !ReferencesEqual(ar[i], br[i]) {
			return false
		}
	}
	return true
}

// StatementGroupsEqual reports equality of two statement groups as
// ordered sequences.
func StatementGroupsEqual(a, b StatementGroup) bool {
	if len(a.statements) != len(b.statements) {
		return false
	}
	for i := range a.statements {
		if !StatementsEqual(a.statements[i], b.statements[i]) {
			return false
		}
	}
	return true
}

// SiteLinksEqual reports structural equality of two site links,
// including badge order.
func SiteLinksEqual(a, b SiteLink) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Title() != b.Title() || a.SiteKey() != b.SiteKey() {
		return false
	}
	ab, bb := a.Badges(), b.Badges()
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Stable FNV-1a hashing consistent with the equality functions above:
// structurally equal instances hash identically regardless of
// implementation.

type hasher struct {
	h hash.Hash64
}

func newHasher() *hasher {
	return &hasher{h: fnv.New64a()}
}

func (h *hasher) str(s string) {
	h.h.Write([]byte(s))
	h.h.Write([]byte{0})
}

func (h *hasher) i64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	h.h.Write(buf[:])
}

func (h *hasher) f64(v float64) {
	h.i64(int64(math.Float64bits(v)))
}

func (h *hasher) sum() uint64 {
	return h.h.Sum64()
}

// HashValue returns a stable hash consistent with ValuesEqual.
func HashValue(v Value) uint64 {
	h := newHasher()
	hashValueInto(h, v)
	return h.sum()
}

func hashValueInto(h *hasher, v Value) {
	if v == nil {
		h.str("nil")
		return
	}
	h.i64(int64(v.ValueKind()))
	// Values reporting a kind without implementing its interface only
	// contribute the kind tag, mirroring ValuesEqual.
	switch v.ValueKind() {
	case KindItemID, KindPropertyID:
		if id, ok := v.(EntityIDValue); ok {
			h.str(id.ID())
			h.str(id.SiteIRI())
		}
	case KindString:
		if sv, ok := v.(StringValue); ok {
			h.str(sv.Text())
		}
	case KindMonolingualText:
		if mv, ok := v.(MonolingualTextValue); ok {
			h.str(mv.Text())
			h.str(mv.LanguageCode())
		}
	case KindTime:
		if tv, ok := v.(TimeValue); ok {
			h.i64(tv.Year())
			h.i64(int64(tv.Month()))
			h.i64(int64(tv.Day()))
			h.i64(int64(tv.Hour()))
			h.i64(int64(tv.Minute()))
			h.i64(int64(tv.Second()))
			h.i64(int64(tv.Precision()))
			h.i64(int64(tv.BeforeTolerance()))
			h.i64(int64(tv.AfterTolerance()))
			h.i64(int64(tv.TimezoneOffset()))
			h.str(tv.CalendarModel())
		}
	case KindGlobeCoordinates:
		if gv, ok := v.(GlobeCoordinatesValue); ok {
			h.f64(gv.Latitude())
			h.f64(gv.Longitude())
			h.f64(gv.Precision())
			h.str(gv.Globe())
		}
	case KindQuantity:
		if qv, ok := v.(QuantityValue); ok {
			h.str(qv.Amount())
			h.str(qv.LowerBound())
			h.str(qv.UpperBound())
			h.str(qv.Unit())
		}
	}
}

// HashSnak returns a stable hash consistent with SnaksEqual.
func HashSnak(s Snak) uint64 {
	h := newHasher()
	hashSnakInto(h, s)
	return h.sum()
}

func hashSnakInto(h *hasher, s Snak) {
	if s == nil {
		h.str("nil")
		return
	}
	h.i64(int64(s.SnakKind()))
	h.str(s.Property().ID())
	h.str(s.Property().SiteIRI())
	if vs, ok := s.(ValueSnak); ok && s.SnakKind() == SnakValue {
		h.str(vs.Datatype())
		hashValueInto(h, vs.Value())
	}
}

// HashReference returns a stable hash consistent with ReferencesEqual.
func HashReference(r Reference) uint64 {
	h := newHasher()
	hashReferenceInto(h, r)
	return h.sum()
}

func hashReferenceInto(h *hasher, r Reference) {
	if r == nil {
		h.str("nil")
		return
	}
	for _, g := range r.SnakGroups() {
		for _, s := range g.Snaks() {
			hashSnakInto(h, s)
		}
	}
}

// HashStatement returns a stable hash consistent with StatementsEqual.
func HashStatement(s Statement) uint64 {
	h := newHasher()
	if s == nil {
		h.str("nil")
		return h.sum()
	}
	h.str(s.ID())
	h.i64(int64(s.Rank()))
	h.str(s.Subject().ID())
	h.str(s.Subject().SiteIRI())
	hashSnakInto(h, s.MainSnak())
	for _, g := range s.Qualifiers() {
		for _, q := range g.Snaks() {
			hashSnakInto(h, q)
		}
	}
	for _, r := range s.References() {
		hashReferenceInto(h, r)
	}
	return h.sum()
}
