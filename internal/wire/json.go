package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/wikibase/internal/model"
)

// Wire value type tags used in datavalue envelopes.
const (
	valueTypeEntityID        = "wikibase-entityid"
	valueTypeString          = "string"
	valueTypeMonolingualText = "monolingualtext"
	valueTypeTime            = "time"
	valueTypeGlobe           = "globecoordinate"
	valueTypeQuantity        = "quantity"
)

// unitDimensionless is how the wire encodes the empty (dimensionless)
// unit.
const unitDimensionless = "1"

type dataValueJSON struct {
	Value json.RawMessage `json:"value"`
	Type  string          `json:"type"`
}

type entityIDJSON struct {
	EntityType string `json:"entity-type,omitempty"`
	NumericID  int64  `json:"numeric-id,omitempty"`
	ID         string `json:"id,omitempty"`
}

type monoValueJSON struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type timeJSON struct {
	Time          string `json:"time"`
	Timezone      int    `json:"timezone"`
	Before        int    `json:"before"`
	After         int    `json:"after"`
	Precision     int    `json:"precision"`
	CalendarModel string `json:"calendarmodel"`
}

type globeJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision float64 `json:"precision"`
	Globe     string  `json:"globe"`
}

type quantityJSON struct {
	Amount     string `json:"amount"`
	Unit       string `json:"unit"`
	UpperBound string `json:"upperBound,omitempty"`
	LowerBound string `json:"lowerBound,omitempty"`
}

func marshalEnvelope(typ string, inner any) ([]byte, error) {
	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dataValueJSON{Value: raw, Type: typ})
}

// MarshalJSON serializes the entity id as a datavalue envelope.
func (e *EntityID) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(valueTypeEntityID, entityIDJSON{
		EntityType: e.entityType,
		NumericID:  e.numericID(),
		ID:         e.id,
	})
}

// MarshalJSON serializes the string as a datavalue envelope.
func (s *String) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(valueTypeString, s.text)
}

// MarshalJSON serializes the monolingual text as a datavalue envelope.
func (m *MonolingualText) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(valueTypeMonolingualText, monoValueJSON{Text: m.text, Language: m.language})
}

// MarshalJSON serializes the time as a datavalue envelope.
func (t *Time) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(valueTypeTime, timeJSON{
		Time:          formatTimeLiteral(t),
		Timezone:      t.timezone,
		Before:        t.before,
		After:         t.after,
		Precision:     int(t.precision),
		CalendarModel: t.calendar,
	})
}

// MarshalJSON serializes the coordinates as a datavalue envelope.
func (g *GlobeCoordinates) MarshalJSON() ([]byte, error) {
	return marshalEnvelope(valueTypeGlobe, globeJSON{
		Latitude:  g.latitude,
		Longitude: g.longitude,
		Precision: g.precision,
		Globe:     g.globe,
	})
}

// MarshalJSON serializes the quantity as a datavalue envelope.
func (q *Quantity) MarshalJSON() ([]byte, error) {
	unit := q.unit
	if unit == "" {
		unit = unitDimensionless
	}
	return marshalEnvelope(valueTypeQuantity, quantityJSON{
		Amount:     q.amount,
		Unit:       unit,
		UpperBound: q.upper,
		LowerBound: q.lower,
	})
}

// formatTimeLiteral renders the wire time literal, e.g.
// "+2001-12-31T00:00:00Z". The year keeps its explicit sign and is
// padded to at least four digits.
func formatTimeLiteral(t *Time) string {
	sign := "+"
	year := t.year
	if year < 0 {
		sign = "-"
		year = -year
	}
	return fmt.Sprintf("%s%04d-%02d-%02dT%02d:%02d:%02dZ",
		sign, year, t.month, t.day, t.hour, t.minute, t.second)
}

func parseTimeLiteral(s string) (year int64, month, day, hour, minute, second int, err error) {
	fail := func() (int64, int, int, int, int, int, error) {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: malformed time literal %q", model.ErrInvalidArgument, s)
	}
	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return fail()
	}
	ti := strings.IndexByte(s, 'T')
	if ti < 0 || !strings.HasSuffix(s, "Z") {
		return fail()
	}
	dateParts := strings.Split(s[1:ti], "-")
	clockParts := strings.Split(strings.TrimSuffix(s[ti+1:], "Z"), ":")
	if len(dateParts) != 3 || len(clockParts) != 3 {
		return fail()
	}
	year, err = strconv.ParseInt(dateParts[0], 10, 64)
	if err != nil {
		return fail()
	}
	if s[0] == '-' {
		year = -year
	}
	ints := make([]int, 5)
	for i, p := range append(dateParts[1:], clockParts...) {
		v, convErr := strconv.Atoi(p)
		if convErr != nil {
			return fail()
		}
		ints[i] = v
	}
	return year, ints[0], ints[1], ints[2], ints[3], ints[4], nil
}

// unmarshalDataValue reads a datavalue envelope into the wire-backed
// value for its type tag.
func unmarshalDataValue(data []byte, siteIRI string) (model.Value, error) {
	var env dataValueJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("datavalue: %w", err)
	}
	switch env.Type {
	case valueTypeEntityID:
		var inner entityIDJSON
		if err := json.Unmarshal(env.Value, &inner); err != nil {
			return nil, fmt.Errorf("entity id value: %w", err)
		}
		id := inner.ID
		entityType := inner.EntityType
		if id == "" {
			switch entityType {
			case model.EntityTypeItem:
				id = "Q" + strconv.FormatInt(inner.NumericID, 10)
			case model.EntityTypeProperty:
				id = "P" + strconv.FormatInt(inner.NumericID, 10)
			default:
				return nil, fmt.Errorf("%w: entity id value without id", model.ErrInvalidArgument)
			}
		}
		if entityType == "" {
			entityType = entityTypeForID(id)
		}
		return newEntityID(entityType, id, siteIRI)
	case valueTypeString:
		var text string
		if err := json.Unmarshal(env.Value, &text); err != nil {
			return nil, fmt.Errorf("string value: %w", err)
		}
		return newString(text), nil
	case valueTypeMonolingualText:
		var inner monoValueJSON
		if err := json.Unmarshal(env.Value, &inner); err != nil {
			return nil, fmt.Errorf("monolingual text value: %w", err)
		}
		return newMonolingualText(inner.Text, inner.Language)
	case valueTypeTime:
		var inner timeJSON
		if err := json.Unmarshal(env.Value, &inner); err != nil {
			return nil, fmt.Errorf("time value: %w", err)
		}
		year, month, day, hour, minute, second, err := parseTimeLiteral(inner.Time)
		if err != nil {
			return nil, err
		}
		return newTime(year, month, day, hour, minute, second,
			model.TimePrecision(inner.Precision), inner.Before, inner.After, inner.Timezone, inner.CalendarModel)
	case valueTypeGlobe:
		var inner globeJSON
		if err := json.Unmarshal(env.Value, &inner); err != nil {
			return nil, fmt.Errorf("globe coordinates value: %w", err)
		}
		return newGlobeCoordinates(inner.Latitude, inner.Longitude, inner.Precision, inner.Globe)
	case valueTypeQuantity:
		var inner quantityJSON
		if err := json.Unmarshal(env.Value, &inner); err != nil {
			return nil, fmt.Errorf("quantity value: %w", err)
		}
		unit := inner.Unit
		if unit == unitDimensionless {
			unit = ""
		}
		return newQuantity(inner.Amount, inner.LowerBound, inner.UpperBound, unit)
	}
	return nil, fmt.Errorf("%w: unknown datavalue type %q", model.ErrUnsupported, env.Type)
}

func entityTypeForID(id string) string {
	if strings.HasPrefix(id, "P") {
		return model.EntityTypeProperty
	}
	return model.EntityTypeItem
}

type snakJSON struct {
	SnakType  string          `json:"snaktype"`
	Property  string          `json:"property"`
	Datatype  string          `json:"datatype,omitempty"`
	DataValue json.RawMessage `json:"datavalue,omitempty"`
}

// MarshalJSON serializes a value snak.
func (s *ValueSnak) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(s.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(snakJSON{
		SnakType:  model.SnakValue.String(),
		Property:  s.property.id,
		Datatype:  s.datatype,
		DataValue: raw,
	})
}

// MarshalJSON serializes a some-value snak.
func (s *SomeValueSnak) MarshalJSON() ([]byte, error) {
	return json.Marshal(snakJSON{SnakType: model.SnakSomeValue.String(), Property: s.property.id})
}

// MarshalJSON serializes a no-value snak.
func (s *NoValueSnak) MarshalJSON() ([]byte, error) {
	return json.Marshal(snakJSON{SnakType: model.SnakNoValue.String(), Property: s.property.id})
}

func unmarshalSnak(data []byte, siteIRI string) (model.Snak, error) {
	var sj snakJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("snak: %w", err)
	}
	property, err := newEntityID(model.EntityTypeProperty, sj.Property, siteIRI)
	if err != nil {
		return nil, err
	}
	switch sj.SnakType {
	case "value":
		if len(sj.DataValue) == 0 {
			return nil, fmt.Errorf("%w: value snak for %s without datavalue", model.ErrInvalidArgument, sj.Property)
		}
		value, err := unmarshalDataValue(sj.DataValue, siteIRI)
		if err != nil {
			return nil, err
		}
		return &ValueSnak{property: property, datatype: sj.Datatype, value: value}, nil
	case "somevalue":
		return &SomeValueSnak{property: property}, nil
	case "novalue":
		return &NoValueSnak{property: property}, nil
	}
	return nil, fmt.Errorf("%w: unknown snak type %q", model.ErrInvalidArgument, sj.SnakType)
}

// marshalGroupedSnaks renders snak groups as the wire's property-keyed
// object, with keys emitted in group order, and returns the parallel
// order list.
func marshalGroupedSnaks(groups []model.SnakGroup) (json.RawMessage, []string, error) {
	var buf bytes.Buffer
	order := make([]string, 0, len(groups))
	buf.WriteByte('{')
	for i, g := range groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		pid := g.Property().ID()
		order = append(order, pid)
		key, err := json.Marshal(pid)
		if err != nil {
			return nil, nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('[')
		for j, s := range g.Snaks() {
			if j > 0 {
				buf.WriteByte(',')
			}
			raw, err := json.Marshal(s)
			if err != nil {
				return nil, nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), order, nil
}

// unmarshalGroupedSnaks reads a property-keyed snak object plus its
// parallel order list into snak groups, enforcing the 1:1
// correspondence between the two.
func unmarshalGroupedSnaks(snaks map[string]json.RawMessage, order []string, siteIRI string) ([]model.SnakGroup, error) {
	if len(order) == 0 && len(snaks) > 0 {
		// Dumps may omit the order list when there is a single
		// property.
		if len(snaks) > 1 {
			return nil, fmt.Errorf("%w: snak map with %d properties but no order list", model.ErrInvalidArgument, len(snaks))
		}
		for pid := range snaks {
			order = []string{pid}
		}
	}
	if len(order) != len(snaks) {
		return nil, fmt.Errorf("%w: snak order lists %d properties, map has %d", model.ErrInvalidArgument, len(order), len(snaks))
	}
	groups := make([]model.SnakGroup, 0, len(order))
	for _, pid := range order {
		raw, ok := snaks[pid]
		if !ok {
			return nil, fmt.Errorf("%w: order lists %s but snak map lacks it", model.ErrInvalidArgument, pid)
		}
		var rawSnaks []json.RawMessage
		if err := json.Unmarshal(raw, &rawSnaks); err != nil {
			return nil, fmt.Errorf("snaks of %s: %w", pid, err)
		}
		list := make([]model.Snak, 0, len(rawSnaks))
		for _, rs := range rawSnaks {
			s, err := unmarshalSnak(rs, siteIRI)
			if err != nil {
				return nil, err
			}
			list = append(list, s)
		}
		group, err := model.NewSnakGroup(list)
		if err != nil {
			return nil, err
		}
		if group.Property().ID() != pid {
			return nil, fmt.Errorf("%w: snaks under key %s use property %s", model.ErrInvalidArgument, pid, group.Property().ID())
		}
		groups = append(groups, group)
	}
	return groups, nil
}

type referenceJSON struct {
	Snaks      map[string]json.RawMessage `json:"snaks"`
	SnaksOrder []string                   `json:"snaks-order,omitempty"`
}

// MarshalJSON serializes the reference with its snaks in group order.
func (r *Reference) MarshalJSON() ([]byte, error) {
	snaks, order, err := marshalGroupedSnaks(r.groups)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Snaks      json.RawMessage `json:"snaks"`
		SnaksOrder []string        `json:"snaks-order"`
	}{Snaks: snaks, SnaksOrder: order})
}

func unmarshalReference(data []byte, siteIRI string) (*Reference, error) {
	var rj referenceJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	groups, err := unmarshalGroupedSnaks(rj.Snaks, rj.SnaksOrder, siteIRI)
	if err != nil {
		return nil, err
	}
	return &Reference{groups: groups}, nil
}

type statementJSON struct {
	ID              string                     `json:"id,omitempty"`
	Type            string                     `json:"type"`
	Rank            string                     `json:"rank"`
	MainSnak        json.RawMessage            `json:"mainsnak"`
	Qualifiers      map[string]json.RawMessage `json:"qualifiers,omitempty"`
	QualifiersOrder []string                   `json:"qualifiers-order,omitempty"`
	References      []json.RawMessage          `json:"references,omitempty"`
}

// MarshalJSON serializes the statement with qualifiers in group order.
// The subject is not part of the wire form; it is implied by the
// enclosing document.
func (s *Statement) MarshalJSON() ([]byte, error) {
	mainSnak, err := json.Marshal(s.mainSnak)
	if err != nil {
		return nil, err
	}
	out := struct {
		ID              string            `json:"id,omitempty"`
		Type            string            `json:"type"`
		Rank            string            `json:"rank"`
		MainSnak        json.RawMessage   `json:"mainsnak"`
		Qualifiers      json.RawMessage   `json:"qualifiers,omitempty"`
		QualifiersOrder []string          `json:"qualifiers-order,omitempty"`
		References      []json.RawMessage `json:"references,omitempty"`
	}{
		ID:       s.id,
		Type:     "statement",
		Rank:     s.rank.String(),
		MainSnak: mainSnak,
	}
	if len(s.qualifiers) > 0 {
		qualifiers, order, err := marshalGroupedSnaks(s.qualifiers)
		if err != nil {
			return nil, err
		}
		out.Qualifiers = qualifiers
		out.QualifiersOrder = order
	}
	for _, r := range s.references {
		raw, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		out.References = append(out.References, raw)
	}
	return json.Marshal(out)
}

func unmarshalStatement(data []byte, siteIRI string, subject *EntityID) (*Statement, error) {
	var sj statementJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return nil, fmt.Errorf("statement: %w", err)
	}
	rank, err := model.ParseRank(sj.Rank)
	if err != nil {
		return nil, err
	}
	mainSnak, err := unmarshalSnak(sj.MainSnak, siteIRI)
	if err != nil {
		return nil, err
	}
	qualifiers, err := unmarshalGroupedSnaks(sj.Qualifiers, sj.QualifiersOrder, siteIRI)
	if err != nil {
		return nil, err
	}
	references := make([]*Reference, 0, len(sj.References))
	for _, raw := range sj.References {
		ref, err := unmarshalReference(raw, siteIRI)
		if err != nil {
			return nil, err
		}
		references = append(references, ref)
	}
	return &Statement{
		id:         sj.ID,
		rank:       rank,
		subject:    subject,
		mainSnak:   mainSnak,
		qualifiers: qualifiers,
		references: references,
	}, nil
}

type siteLinkJSON struct {
	Site   string   `json:"site"`
	Title  string   `json:"title"`
	Badges []string `json:"badges"`
}

// MarshalJSON serializes the site link.
func (l *SiteLink) MarshalJSON() ([]byte, error) {
	badges := l.badges
	if badges == nil {
		badges = []string{}
	}
	return json.Marshal(siteLinkJSON{Site: l.site, Title: l.title, Badges: badges})
}

type termJSON struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

func marshalTermMap(terms map[string]model.MonolingualTextValue) map[string]termJSON {
	if len(terms) == 0 {
		return nil
	}
	out := make(map[string]termJSON, len(terms))
	for lang, term := range terms {
		out[lang] = termJSON{Language: term.LanguageCode(), Value: term.Text()}
	}
	return out
}

func marshalAliasMap(aliases map[string][]model.MonolingualTextValue) map[string][]termJSON {
	if len(aliases) == 0 {
		return nil
	}
	out := make(map[string][]termJSON, len(aliases))
	for lang, terms := range aliases {
		list := make([]termJSON, 0, len(terms))
		for _, term := range terms {
			list = append(list, termJSON{Language: term.LanguageCode(), Value: term.Text()})
		}
		out[lang] = list
	}
	return out
}

func unmarshalTermMap(terms map[string]termJSON) (map[string]model.MonolingualTextValue, error) {
	out := make(map[string]model.MonolingualTextValue, len(terms))
	for lang, tj := range terms {
		term, err := newMonolingualText(tj.Value, tj.Language)
		if err != nil {
			return nil, err
		}
		out[lang] = term
	}
	return out, nil
}

func unmarshalAliasMap(aliases map[string][]termJSON) (map[string][]model.MonolingualTextValue, error) {
	out := make(map[string][]model.MonolingualTextValue, len(aliases))
	for lang, list := range aliases {
		terms := make([]model.MonolingualTextValue, 0, len(list))
		for _, tj := range list {
			term, err := newMonolingualText(tj.Value, tj.Language)
			if err != nil {
				return nil, err
			}
			terms = append(terms, term)
		}
		out[lang] = terms
	}
	return out, nil
}

// marshalStatementGroups renders the wire "claims" object with
// properties in group order.
func marshalStatementGroups(groups []model.StatementGroup) (json.RawMessage, error) {
	if len(groups) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Property().ID())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteByte('[')
		for j, s := range g.Statements() {
			if j > 0 {
				buf.WriteByte(',')
			}
			raw, err := json.Marshal(s)
			if err != nil {
				return nil, err
			}
			buf.Write(raw)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalStatementGroups reads the wire "claims" object, preserving
// the property order in which it appears in the document.
func unmarshalStatementGroups(raw json.RawMessage, siteIRI string, subject *EntityID) ([]model.StatementGroup, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("claims: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: claims must be an object", model.ErrInvalidArgument)
	}
	var groups []model.StatementGroup
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("claims: %w", err)
		}
		pid := keyTok.(string)
		var rawStatements []json.RawMessage
		if err := dec.Decode(&rawStatements); err != nil {
			return nil, fmt.Errorf("claims of %s: %w", pid, err)
		}
		if len(rawStatements) == 0 {
			continue
		}
		statements := make([]model.Statement, 0, len(rawStatements))
		for _, rs := range rawStatements {
			st, err := unmarshalStatement(rs, siteIRI, subject)
			if err != nil {
				return nil, err
			}
			statements = append(statements, st)
		}
		group, err := model.NewStatementGroup(statements)
		if err != nil {
			return nil, err
		}
		if group.Property().ID() != pid {
			return nil, fmt.Errorf("%w: statements under key %s use property %s", model.ErrInvalidArgument, pid, group.Property().ID())
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// Document type tags.
const (
	documentTypeItem     = "item"
	documentTypeProperty = "property"
)

// MarshalJSON serializes the item document. Statement groups keep
// their document order; term and sitelink maps serialize with sorted
// keys.
func (d *ItemDocument) MarshalJSON() ([]byte, error) {
	claims, err := marshalStatementGroups(d.groups)
	if err != nil {
		return nil, err
	}
	siteLinks := make(map[string]json.RawMessage, len(d.siteLinks))
	for key, link := range d.siteLinks {
		raw, err := json.Marshal(link)
		if err != nil {
			return nil, err
		}
		siteLinks[key] = raw
	}
	return json.Marshal(struct {
		Type         string                     `json:"type"`
		ID           string                     `json:"id"`
		Labels       map[string]termJSON        `json:"labels,omitempty"`
		Descriptions map[string]termJSON        `json:"descriptions,omitempty"`
		Aliases      map[string][]termJSON      `json:"aliases,omitempty"`
		Claims       json.RawMessage            `json:"claims,omitempty"`
		SiteLinks    map[string]json.RawMessage `json:"sitelinks,omitempty"`
		LastRevID    int64                      `json:"lastrevid,omitempty"`
	}{
		Type:         documentTypeItem,
		ID:           d.id.id,
		Labels:       marshalTermMap(d.labels),
		Descriptions: marshalTermMap(d.descriptions),
		Aliases:      marshalAliasMap(d.aliases),
		Claims:       claims,
		SiteLinks:    siteLinks,
		LastRevID:    d.revision,
	})
}

// MarshalJSON serializes the property document.
func (d *PropertyDocument) MarshalJSON() ([]byte, error) {
	claims, err := marshalStatementGroups(d.groups)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Type         string                `json:"type"`
		ID           string                `json:"id"`
		Datatype     string                `json:"datatype"`
		Labels       map[string]termJSON   `json:"labels,omitempty"`
		Descriptions map[string]termJSON   `json:"descriptions,omitempty"`
		Aliases      map[string][]termJSON `json:"aliases,omitempty"`
		Claims       json.RawMessage       `json:"claims,omitempty"`
		LastRevID    int64                 `json:"lastrevid,omitempty"`
	}{
		Type:         documentTypeProperty,
		ID:           d.id.id,
		Datatype:     d.datatype,
		Labels:       marshalTermMap(d.labels),
		Descriptions: marshalTermMap(d.descriptions),
		Aliases:      marshalAliasMap(d.aliases),
		Claims:       claims,
		LastRevID:    d.revision,
	})
}

type documentJSON struct {
	Type         string                  `json:"type"`
	ID           string                  `json:"id"`
	Datatype     string                  `json:"datatype"`
	Labels       map[string]termJSON     `json:"labels"`
	Descriptions map[string]termJSON     `json:"descriptions"`
	Aliases      map[string][]termJSON   `json:"aliases"`
	Claims       json.RawMessage         `json:"claims"`
	SiteLinks    map[string]siteLinkJSON `json:"sitelinks"`
	LastRevID    int64                   `json:"lastrevid"`
}

// UnmarshalEntityDocument reads one serialized entity document,
// dispatching on its type tag. The entity is attributed to
// DefaultSiteIRI; use UnmarshalEntityDocumentFrom to read documents of
// another knowledge base.
func UnmarshalEntityDocument(data []byte) (model.EntityDocument, error) {
	return UnmarshalEntityDocumentFrom(data, DefaultSiteIRI)
}

// UnmarshalEntityDocumentFrom reads one serialized entity document
// belonging to the knowledge base identified by siteIRI.
func UnmarshalEntityDocumentFrom(data []byte, siteIRI string) (model.EntityDocument, error) {
	var dj documentJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return nil, fmt.Errorf("entity document: %w", err)
	}
	switch dj.Type {
	case documentTypeItem:
		return itemDocumentFromJSON(&dj, siteIRI)
	case documentTypeProperty:
		return propertyDocumentFromJSON(&dj, siteIRI)
	}
	return nil, fmt.Errorf("%w: unknown entity document type %q", model.ErrUnsupported, dj.Type)
}

func itemDocumentFromJSON(dj *documentJSON, siteIRI string) (*ItemDocument, error) {
	id, err := newEntityID(model.EntityTypeItem, dj.ID, siteIRI)
	if err != nil {
		return nil, err
	}
	labels, err := unmarshalTermMap(dj.Labels)
	if err != nil {
		return nil, err
	}
	descriptions, err := unmarshalTermMap(dj.Descriptions)
	if err != nil {
		return nil, err
	}
	aliases, err := unmarshalAliasMap(dj.Aliases)
	if err != nil {
		return nil, err
	}
	groups, err := unmarshalStatementGroups(dj.Claims, siteIRI, id)
	if err != nil {
		return nil, err
	}
	siteLinks := make(map[string]model.SiteLink, len(dj.SiteLinks))
	for key, lj := range dj.SiteLinks {
		siteLinks[key] = &SiteLink{site: lj.Site, title: lj.Title, badges: lj.Badges}
	}
	return &ItemDocument{
		id:           id,
		labels:       labels,
		descriptions: descriptions,
		aliases:      aliases,
		groups:       groups,
		siteLinks:    siteLinks,
		revision:     dj.LastRevID,
	}, nil
}

func propertyDocumentFromJSON(dj *documentJSON, siteIRI string) (*PropertyDocument, error) {
	id, err := newEntityID(model.EntityTypeProperty, dj.ID, siteIRI)
	if err != nil {
		return nil, err
	}
	labels, err := unmarshalTermMap(dj.Labels)
	if err != nil {
		return nil, err
	}
	descriptions, err := unmarshalTermMap(dj.Descriptions)
	if err != nil {
		return nil, err
	}
	aliases, err := unmarshalAliasMap(dj.Aliases)
	if err != nil {
		return nil, err
	}
	groups, err := unmarshalStatementGroups(dj.Claims, siteIRI, id)
	if err != nil {
		return nil, err
	}
	return &PropertyDocument{
		id:           id,
		labels:       labels,
		descriptions: descriptions,
		aliases:      aliases,
		groups:       groups,
		datatype:     dj.Datatype,
		revision:     dj.LastRevID,
	}, nil
}
