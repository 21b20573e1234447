package models

import "strings"

// TagKind distinguishes numeric tags (bpm, year, energy) from string tags
// (artist, mood, genre). It drives which operators the rule builder offers.
type TagKind string

const (
	TagKindNumeric TagKind = "numeric"
	TagKindString  TagKind = "string"
)

// TagInfo describes a known tag key and its kind
type TagInfo struct {
	Key  string
	Kind TagKind
}

// StandardTags lists the tag keys Nomarr knows about out of the box.
// Scanned files always carry artist/album/title/format; the rest come from
// the tag database or external analyzers.
var StandardTags = []TagInfo{
	{Key: "artist", Kind: TagKindString},
	{Key: "album", Kind: TagKindString},
	{Key: "title", Kind: TagKindString},
	{Key: "genre", Kind: TagKindString},
	{Key: "mood", Kind: TagKindString},
	{Key: "format", Kind: TagKindString},
	{Key: "year", Kind: TagKindNumeric},
	{Key: "bpm", Kind: TagKindNumeric},
	{Key: "energy", Kind: TagKindNumeric},
	{Key: "rating", Kind: TagKindNumeric},
	{Key: "duration", Kind: TagKindNumeric},
}

// LookupTag finds a standard tag by key (case-insensitive match on the key)
func LookupTag(key string) (TagInfo, bool) {
	for _, t := range StandardTags {
		if strings.EqualFold(t.Key, key) {
			return t, true
		}
	}
	return TagInfo{}, false
}

// Track represents one audio file in the library
type Track struct {
	ID     int64
	Path   string
	Title  string
	Artist string
	Album  string

	// Tags holds every tag value keyed by tag key, including the fields
	// above. All values are stored as text; numeric tags are parsed at
	// comparison time.
	Tags map[string]string
}

// Tag returns the value for a tag key, or "" when the track has no such tag
func (t Track) Tag(key string) string {
	if t.Tags == nil {
		return ""
	}
	return t.Tags[key]
}
