// Package pipeline streams entity documents out of dump files and runs
// them through processors on a worker pool.
package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ppiankov/wikibase/internal/cache"
	"github.com/ppiankov/wikibase/internal/dump"
	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/wire"
	"github.com/ppiankov/wikibase/internal/worker"
)

// ErrEntityNotFound is returned when a lookup scans the whole dump
// without finding the requested entity.
var ErrEntityNotFound = errors.New("entity not found in dump")

// Processor consumes decoded entity documents. Documents arrive from
// multiple workers, so implementations must be safe for concurrent
// use.
type Processor interface {
	ProcessItem(ctx context.Context, doc *wire.ItemDocument) error
	ProcessProperty(ctx context.Context, doc *wire.PropertyDocument) error
}

// Stats summarizes one dump run
type Stats struct {
	Items      int64         `json:"items"`
	Properties int64         `json:"properties"`
	Errors     int64         `json:"errors"`
	Duration   time.Duration `json:"duration"`
}

// Entities returns the total number of documents decoded successfully.
func (s *Stats) Entities() int64 {
	return s.Items + s.Properties
}

// Pipeline orchestrates the complete dump processing flow
type Pipeline struct {
	file    dump.File
	limiter *worker.Limiter
	store   cache.Cache
	config  *model.Config
}

// NewPipeline creates a new pipeline over the given dump file
func NewPipeline(cfg *model.Config, file dump.File) *Pipeline {
	p := &Pipeline{
		file:   file,
		config: cfg,
	}
	if cfg.Limits.EntitiesPerSecond > 0 {
		p.limiter = worker.NewLimiter(cfg.Limits.EntitiesPerSecond, cfg.Limits.Burst)
	}
	if cfg.Cache.Enabled {
		p.store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return p
}

// entityJob decodes one raw dump record and hands it to the processor
type entityJob struct {
	raw       json.RawMessage
	processor Processor
	limiter   *worker.Limiter
}

type entityResult struct {
	kind string
	err  error
}

func (r *entityResult) GetError() error {
	return r.err
}

// Execute implements worker.Job
func (j *entityJob) Execute(ctx context.Context) worker.Result {
	doc, err := wire.UnmarshalEntityDocument(j.raw)
	if err != nil {
		return &entityResult{err: err}
	}
	kind := doc.EntityID().EntityType()
	if j.limiter != nil {
		if err := j.limiter.Wait(ctx, kind); err != nil {
			return &entityResult{kind: kind, err: err}
		}
	}
	switch d := doc.(type) {
	case *wire.ItemDocument:
		err = j.processor.ProcessItem(ctx, d)
	case *wire.PropertyDocument:
		err = j.processor.ProcessProperty(ctx, d)
	}
	return &entityResult{kind: kind, err: err}
}

// ProcessDump streams every entity document in the dump through the
// processor. Decoding and processing run on a worker pool; results are
// tallied as they arrive so memory stays flat regardless of dump size.
func (p *Pipeline) ProcessDump(ctx context.Context, processor Processor) (*Stats, error) {
	start := time.Now()

	reader, err := p.file.OpenText()
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer func() { _ = reader.Close() }()

	dec := json.NewDecoder(bufio.NewReaderSize(reader, 1<<20))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("dump %s: expected entity array, got %v", p.file, tok)
	}

	pool := worker.NewPool(p.config.Concurrency.Workers)
	pool.Start()

	stats := &Stats{}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for result := range pool.Results() {
			res := result.(*entityResult)
			switch {
			case res.err != nil:
				atomic.AddInt64(&stats.Errors, 1)
			case res.kind == model.EntityTypeProperty:
				atomic.AddInt64(&stats.Properties, 1)
			default:
				atomic.AddInt64(&stats.Items, 1)
			}
		}
	}()

	var readErr error
	for dec.More() {
		if ctx.Err() != nil {
			readErr = ctx.Err()
			break
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			readErr = fmt.Errorf("read dump record: %w", err)
			break
		}
		pool.Submit(&entityJob{raw: raw, processor: processor, limiter: p.limiter})
	}

	pool.Finish()
	<-drained

	stats.Duration = time.Since(start)
	if readErr != nil {
		return stats, readErr
	}
	return stats, nil
}

// LookupEntity finds one entity document by id, serving it from the
// cache when possible and scanning the dump otherwise. It implements
// worker.Lookup.
func (p *Pipeline) LookupEntity(ctx context.Context, id string) (model.EntityDocument, error) {
	key := cache.EntityKey(p.file.DateStamp(), id)
	if p.store != nil {
		if raw, found := p.store.Get(key); found {
			return wire.UnmarshalEntityDocument(raw)
		}
	}

	raw, err := p.scanForEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.store != nil {
		_ = p.store.Set(key, raw, 0)
	}
	return wire.UnmarshalEntityDocument(raw)
}

// scanForEntity reads the dump sequentially until it hits the record
// with the wanted id.
func (p *Pipeline) scanForEntity(ctx context.Context, id string) (json.RawMessage, error) {
	reader, err := p.file.OpenText()
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer func() { _ = reader.Close() }()

	dec := json.NewDecoder(bufio.NewReaderSize(reader, 1<<20))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("dump %s: expected entity array, got %v", p.file, tok)
	}

	type idProbe struct {
		ID string `json:"id"`
	}

	scanned := 0
	for dec.More() {
		scanned++
		if scanned%1024 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read dump record: %w", err)
		}
		var probe idProbe
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.ID == id {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("%w: %s in %s", ErrEntityNotFound, id, p.file)
}
