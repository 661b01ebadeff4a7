package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ppiankov/wikibase/internal/model"
	"github.com/ppiankov/wikibase/internal/wire"
)

// MockLookup implements Lookup
type MockLookup struct {
	ShouldError bool
}

func (m *MockLookup) LookupEntity(ctx context.Context, id string) (model.EntityDocument, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.ShouldError {
		return nil, errors.New("lookup error")
	}
	return wire.UnmarshalEntityDocument([]byte(`{"type":"item","id":"` + id + `"}`))
}

func TestBatchProcessor_ProcessIDs(t *testing.T) {
	lookup := &MockLookup{}
	processor := NewBatchProcessor(lookup, 2)

	ids := []string{"Q1", "Q42", "Q64"}
	ctx := context.Background()

	results := processor.ProcessIDs(ctx, ids)

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	successCount := 0
	for _, res := range results {
		if res.Error == nil {
			successCount++
			if res.Document == nil {
				t.Error("expected document for successful lookup")
			}
		} else {
			t.Errorf("unexpected error for %s: %v", res.ID, res.Error)
		}
	}

	if successCount != 3 {
		t.Errorf("expected 3 successes, got %d", successCount)
	}
}

func TestBatchProcessor_ProcessIDs_Error(t *testing.T) {
	lookup := &MockLookup{ShouldError: true}
	processor := NewBatchProcessor(lookup, 2)

	results := processor.ProcessIDs(context.Background(), []string{"Q1"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Document != nil {
		t.Error("expected nil document on error")
	}
}

func TestBatchProcessor_ProcessIDs_Empty(t *testing.T) {
	lookup := &MockLookup{}
	processor := NewBatchProcessor(lookup, 2)

	results := processor.ProcessIDs(context.Background(), []string{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadEntityIDsFromFile(t *testing.T) {
	content := `Q1
# comment
P31

Q42   `

	tmpfile, err := os.CreateTemp("", "ids")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	ids, err := ReadEntityIDsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadEntityIDsFromFile failed: %v", err)
	}

	expected := []string{"Q1", "P31", "Q42"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d ids, got %d", len(expected), len(ids))
	}

	for i, id := range ids {
		if id != expected[i] {
			t.Errorf("expected id %s at index %d, got %s", expected[i], i, id)
		}
	}
}

func TestReadEntityIDsFromFile_NonExistent(t *testing.T) {
	_, err := ReadEntityIDsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestLookupResult_GetError(t *testing.T) {
	r1 := &LookupResult{ID: "Q1", Error: nil}
	if r1.GetError() != nil {
		t.Errorf("expected nil error, got %v", r1.GetError())
	}

	expected := errors.New("lookup failed")
	r2 := &LookupResult{ID: "Q1", Error: expected}
	if r2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "Q1\nP31\n# comment\n\nQ42\n"

	tmpfile, err := os.CreateTemp("", "batch_ids")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	lookup := &MockLookup{}
	processor := NewBatchProcessor(lookup, 2)

	results, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	lookup := &MockLookup{}
	processor := NewBatchProcessor(lookup, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestReadEntityIDsFromFile_Deduplication(t *testing.T) {
	content := `Q42
Q42`

	tmpfile, err := os.CreateTemp("", "ids_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	ids, err := ReadEntityIDsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadEntityIDsFromFile failed: %v", err)
	}

	if len(ids) != 1 {
		t.Errorf("expected 1 id after deduplication, got %d", len(ids))
	}
}
