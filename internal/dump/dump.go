// Package dump gives access to knowledge base dump files: the
// serialized entity documents that the wire package decodes.
package dump

import "strings"

// ContentType identifies what a dump file contains.
type ContentType int

const (
	// ContentFull is a complete XML revision history dump.
	ContentFull ContentType = iota
	// ContentDaily is an incremental XML dump of one day's changes.
	ContentDaily
	// ContentCurrent is an XML dump of current revisions only.
	ContentCurrent
	// ContentSites is an SQL dump of the sites table.
	ContentSites
	// ContentJSON is a JSON dump of current entity documents.
	ContentJSON
)

// String returns the dump content type name.
func (t ContentType) String() string {
	switch t {
	case ContentFull:
		return "full"
	case ContentDaily:
		return "daily"
	case ContentCurrent:
		return "current"
	case ContentSites:
		return "sites"
	case ContentJSON:
		return "json"
	}
	return "unknown"
}

// Compression identifies how a dump file is compressed.
type Compression int

const (
	CompressionNone Compression = iota
	CompressionBzip2
	CompressionGzip
)

// compressionByContent is the fixed compression scheme each published
// content type uses.
var compressionByContent = map[ContentType]Compression{
	ContentFull:    CompressionBzip2,
	ContentDaily:   CompressionBzip2,
	ContentCurrent: CompressionBzip2,
	ContentSites:   CompressionGzip,
	ContentJSON:    CompressionGzip,
}

// CompressionFor returns the compression scheme used for dumps of the
// given content type.
func CompressionFor(t ContentType) Compression {
	if c, ok := compressionByContent[t]; ok {
		return c
	}
	return CompressionNone
}

// InferContentType guesses the content type from a dump file name by
// substring checks on the lower-cased name. The checks run in a fixed
// order and a later match overrides an earlier one; names that match
// nothing are assumed to be JSON dumps.
func InferContentType(filename string) ContentType {
	name := strings.ToLower(filename)
	matched := false
	t := ContentJSON
	if strings.Contains(name, "bz2") || strings.Contains(name, "full") {
		t, matched = ContentFull, true
	}
	if strings.Contains(name, "daily") {
		t, matched = ContentDaily, true
	}
	if strings.Contains(name, "current") {
		t, matched = ContentCurrent, true
	}
	if strings.Contains(name, "sites") {
		t, matched = ContentSites, true
	}
	if strings.Contains(name, "json") || strings.Contains(name, ".gz") || !matched {
		t = ContentJSON
	}
	return t
}

// unknownDateStamp is reported when a dump file name carries no date.
const unknownDateStamp = "YYYYMMDD"

// inferDateStamp extracts the first run of eight digits from a dump
// file name, the conventional YYYYMMDD stamp. Names without one get
// the unknown placeholder.
func inferDateStamp(filename string) string {
	run := 0
	for i := 0; i < len(filename); i++ {
		if filename[i] >= '0' && filename[i] <= '9' {
			run++
			if run == 8 {
				return filename[i-7 : i+1]
			}
		} else {
			run = 0
		}
	}
	return unknownDateStamp
}
