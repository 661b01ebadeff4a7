package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/wikibase/internal/model"
)

// Lookup defines the interface for resolving one entity id to its
// document.
type Lookup interface {
	LookupEntity(ctx context.Context, id string) (model.EntityDocument, error)
}

// LookupJob represents a single entity lookup job
type LookupJob struct {
	ID     string
	Lookup Lookup
}

// Execute executes the lookup job
func (j *LookupJob) Execute(ctx context.Context) Result {
	doc, err := j.Lookup.LookupEntity(ctx, j.ID)
	return &LookupResult{
		ID:       j.ID,
		Document: doc,
		Error:    err,
	}
}

// LookupResult represents the result of an entity lookup job
type LookupResult struct {
	ID       string
	Document model.EntityDocument
	Error    error
}

// GetError returns the error from the lookup result
func (r *LookupResult) GetError() error {
	return r.Error
}

// BatchProcessor resolves multiple entity ids concurrently
type BatchProcessor struct {
	lookup      Lookup
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(lookup Lookup, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		lookup:      lookup,
		concurrency: concurrency,
	}
}

// ProcessIDs resolves multiple entity ids concurrently
func (b *BatchProcessor) ProcessIDs(ctx context.Context, ids []string) []*LookupResult {
	if len(ids) == 0 {
		return []*LookupResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, id := range ids {
		job := &LookupJob{
			ID:     id,
			Lookup: b.lookup,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	lookupResults := make([]*LookupResult, len(results))
	for i, result := range results {
		lookupResults[i] = result.(*LookupResult)
	}

	return lookupResults
}

// ProcessFile reads entity ids from a file and resolves them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*LookupResult, error) {
	ids, err := ReadEntityIDsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read entity ids: %w", err)
	}

	return b.ProcessIDs(ctx, ids), nil
}

// ReadEntityIDsFromFile reads entity ids from a file (one per line)
func ReadEntityIDsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var ids []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate ids
		if !seen[line] {
			seen[line] = true
			ids = append(ids, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return ids, nil
}
