package dump

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestInferContentType(t *testing.T) {
	tests := []struct {
		name string
		want ContentType
	}{
		{"wikidatawiki-20260801-pages-meta-history.xml.bz2", ContentFull},
		{"wikidatawiki-full-20260801.xml", ContentFull},
		{"wikidatawiki-20260801-daily.xml", ContentDaily},
		{"wikidatawiki-20260801-pages-meta-current.xml", ContentCurrent},
		{"wikidatawiki-20260801-sites.sql", ContentSites},
		{"wikidata-20260801-all.json", ContentJSON},
		{"wikidata-20260801-all.json.gz", ContentJSON},
		// json wins over the earlier bz2 match
		{"wikidata-20260801-all.json.bz2", ContentJSON},
		// .gz wins over sites
		{"wikidatawiki-20260801-sites.sql.gz", ContentJSON},
		// nothing matches, JSON is assumed
		{"somefile.txt", ContentJSON},
		// case-insensitive
		{"WIKIDATAWIKI-DAILY.XML", ContentDaily},
	}
	for _, tc := range tests {
		if got := InferContentType(tc.name); got != tc.want {
			t.Errorf("InferContentType(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCompressionFor(t *testing.T) {
	tests := []struct {
		content ContentType
		want    Compression
	}{
		{ContentFull, CompressionBzip2},
		{ContentDaily, CompressionBzip2},
		{ContentCurrent, CompressionBzip2},
		{ContentSites, CompressionGzip},
		{ContentJSON, CompressionGzip},
		{ContentType(99), CompressionNone},
	}
	for _, tc := range tests {
		if got := CompressionFor(tc.content); got != tc.want {
			t.Errorf("CompressionFor(%s) = %v, want %v", tc.content, got, tc.want)
		}
	}
}

func TestInferDateStamp(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"wikidata-20260801-all.json.gz", "20260801"},
		{"20260801.json", "20260801"},
		{"wikidata-all.json", "YYYYMMDD"},
		// runs shorter than eight digits do not count
		{"wikidata-2026-08-01.json", "YYYYMMDD"},
		// first full run wins
		{"wikidata-20260801-20260715.json", "20260801"},
		{"", "YYYYMMDD"},
	}
	for _, tc := range tests {
		if got := inferDateStamp(tc.name); got != tc.want {
			t.Errorf("inferDateStamp(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNewLocalFile_Inference(t *testing.T) {
	f := NewLocalFile("/dumps/wikidata-20260801-all.json.gz", "wikidatawiki")
	if f.ContentType() != ContentJSON {
		t.Errorf("content type = %s, want json", f.ContentType())
	}
	if f.DateStamp() != "20260801" {
		t.Errorf("date stamp = %q, want 20260801", f.DateStamp())
	}
	if f.Compression() != CompressionGzip {
		t.Errorf("compression = %v, want gzip", f.Compression())
	}
	if f.Project() != "wikidatawiki" {
		t.Errorf("project = %q", f.Project())
	}
	if f.String() != "wikidatawiki-json-20260801" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestNewLocalFile_Options(t *testing.T) {
	f := NewLocalFile("/dumps/data.bin", "wikidatawiki",
		WithContentType(ContentDaily), WithDateStamp("20260715"))
	if f.ContentType() != ContentDaily {
		t.Errorf("content type = %s, want daily", f.ContentType())
	}
	if f.DateStamp() != "20260715" {
		t.Errorf("date stamp = %q, want 20260715", f.DateStamp())
	}
}

func TestLocalFile_IsAvailable(t *testing.T) {
	missing := NewLocalFile(filepath.Join(t.TempDir(), "nope.json"), "wikidatawiki")
	if missing.IsAvailable() {
		t.Error("missing file reported available")
	}

	dir := t.TempDir()
	if NewLocalFile(dir, "wikidatawiki").IsAvailable() {
		t.Error("directory reported available")
	}

	path := filepath.Join(dir, "dump.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !NewLocalFile(path, "wikidatawiki").IsAvailable() {
		t.Error("existing file reported unavailable")
	}
}

func TestLocalFile_OpenText_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wikidata-20260801-all.json.gz")
	content := `[{"type":"item","id":"Q42"}]`

	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(out)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	f := NewLocalFile(path, "wikidatawiki")

	size, err := f.Size()
	if err != nil || size == 0 {
		t.Errorf("Size() = %d, %v", size, err)
	}

	r, err := f.OpenText()
	if err != nil {
		t.Fatalf("OpenText failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != content {
		t.Errorf("decompressed content = %q, want %q", data, content)
	}
}

func TestLocalFile_OpenText_Uncompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.raw")
	if err := os.WriteFile(path, []byte("plain"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewLocalFile(path, "wikidatawiki", WithContentType(ContentType(99)))
	r, err := f.OpenText()
	if err != nil {
		t.Fatalf("OpenText failed: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "plain" {
		t.Errorf("content = %q, want plain", data)
	}
}
