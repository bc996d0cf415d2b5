// Package chatproxy implements the roleplay chat proxy and its
// structured-segment response contract.
package chatproxy

import (
	"encoding/json"
	"regexp"
)

// Segment pairs Chinese text with its pinyin and English translation.
type Segment struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
}

// ParseResult is the outcome of extracting segments from raw model output.
// When OK is false, Segments holds the single fallback segment wrapping the
// raw text and FallbackText carries the original output.
type ParseResult struct {
	OK           bool
	Segments     []Segment
	FallbackText string
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ParseSegments extracts the structured segments from raw model output.
// It tries a fenced ```json block first, then the outermost JSON object,
// then falls back to wrapping the whole text as one segment. It never
// fails: malformed model output degrades to the fallback segment.
func ParseSegments(raw string) ParseResult {
	candidate := raw
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else if m := bareObjectRe.FindString(raw); m != "" {
		candidate = m
	}

	var payload struct {
		Segments []Segment `json:"segments"`
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil || len(payload.Segments) == 0 {
		return ParseResult{
			OK:           false,
			Segments:     []Segment{{Chinese: raw, English: raw}},
			FallbackText: raw,
		}
	}
	return ParseResult{OK: true, Segments: payload.Segments}
}
