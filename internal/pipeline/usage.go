package pipeline

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/wire"
)

// PropertyUsage counts where one property appears across a dump
type PropertyUsage struct {
	Property   string `json:"property"`
	MainSnaks  int64  `json:"main_snaks"`
	Qualifiers int64  `json:"qualifiers"`
	References int64  `json:"references"`
}

// Total returns the combined usage count of the property.
func (u *PropertyUsage) Total() int64 {
	return u.MainSnaks + u.Qualifiers + u.References
}

// Report is the aggregated outcome of a dump run
type Report struct {
	Project     string           `json:"project"`
	DateStamp   string           `json:"date_stamp"`
	GeneratedAt time.Time        `json:"generated_at"`
	Items       int64            `json:"items"`
	Properties  int64            `json:"properties"`
	Statements  int64            `json:"statements"`
	SiteLinks   int64            `json:"site_links"`
	Labels      map[string]int64 `json:"labels_per_language"`
	Usage       []PropertyUsage  `json:"property_usage"`
}

// UsageProcessor aggregates property usage and label coverage over a
// dump. Safe for concurrent use.
type UsageProcessor struct {
	mu         sync.Mutex
	usage      map[string]*PropertyUsage
	labels     map[string]int64
	items      int64
	properties int64
	statements int64
	siteLinks  int64
}

// NewUsageProcessor creates a new usage processor
func NewUsageProcessor() *UsageProcessor {
	return &UsageProcessor{
		usage:  make(map[string]*PropertyUsage),
		labels: make(map[string]int64),
	}
}

// ProcessItem implements Processor
func (u *UsageProcessor) ProcessItem(ctx context.Context, doc *wire.ItemDocument) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items++
	u.siteLinks += int64(len(doc.SiteLinks()))
	u.recordTerms(doc)
	u.recordStatements(doc.StatementGroups())
	return nil
}

// ProcessProperty implements Processor
func (u *UsageProcessor) ProcessProperty(ctx context.Context, doc *wire.PropertyDocument) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.properties++
	u.recordTerms(doc)
	u.recordStatements(doc.StatementGroups())
	return nil
}

func (u *UsageProcessor) recordTerms(doc model.TermedDocument) {
	for lang := range doc.Labels() {
		u.labels[lang]++
	}
}

func (u *UsageProcessor) recordStatements(groups []model.StatementGroup) {
	for _, g := range groups {
		for _, st := range g.Statements() {
			u.statements++
			u.usageOf(st.MainSnak().Property().ID()).MainSnaks++
			for _, qg := range st.Qualifiers() {
				u.usageOf(qg.Property().ID()).Qualifiers += int64(qg.Len())
			}
			for _, ref := range st.References() {
				for _, rg := range ref.SnakGroups() {
					u.usageOf(rg.Property().ID()).References += int64(rg.Len())
				}
			}
		}
	}
}

func (u *UsageProcessor) usageOf(pid string) *PropertyUsage {
	usage, ok := u.usage[pid]
	if !ok {
		usage = &PropertyUsage{Property: pid}
		u.usage[pid] = usage
	}
	return usage
}

// Report builds the final report, with property usage sorted by total
// count descending (ties broken by property id for stable output).
func (u *UsageProcessor) Report(project, dateStamp string) *Report {
	u.mu.Lock()
	defer u.mu.Unlock()

	usage := make([]PropertyUsage, 0, len(u.usage))
	for _, entry := range u.usage {
		usage = append(usage, *entry)
	}
	sort.Slice(usage, func(i, j int) bool {
		ti, tj := usage[i].Total(), usage[j].Total()
		if ti != tj {
			return ti > tj
		}
		return usage[i].Property < usage[j].Property
	})

	labels := make(map[string]int64, len(u.labels))
	for lang, n := range u.labels {
		labels[lang] = n
	}

	return &Report{
		Project:     project,
		DateStamp:   dateStamp,
		GeneratedAt: time.Now().UTC(),
		Items:       u.items,
		Properties:  u.properties,
		Statements:  u.statements,
		SiteLinks:   u.siteLinks,
		Labels:      labels,
		Usage:       usage,
	}
}
