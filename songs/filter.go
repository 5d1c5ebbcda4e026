package songs

import (
	"encoding/json"
	"strings"
)

// ArtistFilter is the substring an artist name must contain for a song to be kept.
const ArtistFilter = "Dempsey"

// Filter decodes every raw item and blanks the ones whose artist name does not
// contain ArtistFilter. Rows are never dropped, so len(result) == len(items).
func Filter(items []RawItem) []Song {
	result := make([]Song, 0, len(items))
	for _, item := range items {
		s := Decode(item)
		if !strings.Contains(s.ArtistName, ArtistFilter) {
			s = Song{}
		}
		result = append(result, s)
	}
	return result
}

// Decode never fails: missing or mistyped fields take their zero value.
func Decode(item RawItem) Song {
	return Song{
		ArtistID:               id(item, "artistId"),
		CollectionID:           id(item, "collectionId"),
		TrackID:                id(item, "trackId"),
		ArtistName:             str(item, "artistName"),
		CollectionName:         str(item, "collectionName"),
		TrackName:              str(item, "trackName"),
		CollectionCensoredName: optStr(item, "collectionCensoredName"),
		TrackCensoredName:      optStr(item, "trackCensoredName"),
		IsStreamable:           boolean(item, "isStreamable"),
	}
}

func str(item RawItem, key string) string {
	s, _ := item[key].(string)
	return s
}

func optStr(item RawItem, key string) *string {
	s, ok := item[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func boolean(item RawItem, key string) bool {
	b, _ := item[key].(bool)
	return b
}

// id accepts both string and numeric identifiers; the catalog sends numbers,
// which a string-only decode would have blanked.
func id(item RawItem, key string) string {
	switch v := item[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
