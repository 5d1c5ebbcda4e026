package repo

import (
	"fmt"

	"foundsongs/songs"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Snapshot field names match the catalog's JSON keys.
const (
	fieldArtistID               = "artistId"
	fieldCollectionID           = "collectionId"
	fieldTrackID                = "trackId"
	fieldArtistName             = "artistName"
	fieldCollectionName         = "collectionName"
	fieldTrackName              = "trackName"
	fieldCollectionCensoredName = "collectionCensoredName"
	fieldTrackCensoredName      = "trackCensoredName"
	fieldIsStreamable           = "isStreamable"
)

// MarshalSongs encodes the whole set as a protobuf ListValue of Structs.
func MarshalSongs(sngs []songs.Song) ([]byte, error) {
	list := &structpb.ListValue{
		Values: make([]*structpb.Value, 0, len(sngs)),
	}
	for _, s := range sngs {
		list.Values = append(list.Values, structpb.NewStructValue(songToMsg(s)))
	}
	raw, err := proto.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal songs: %w: %v", songs.ErrEncodingFailed, err)
	}
	return raw, nil
}

func UnmarshalSongs(raw []byte) ([]songs.Song, error) {
	var list structpb.ListValue
	if err := proto.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("unmarshal songs: %w", err)
	}
	sngs := make([]songs.Song, 0, len(list.Values))
	for _, v := range list.Values {
		sngs = append(sngs, msgToSong(v.GetStructValue()))
	}
	return sngs, nil
}

func songToMsg(s songs.Song) *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldArtistID:       structpb.NewStringValue(s.ArtistID),
		fieldCollectionID:   structpb.NewStringValue(s.CollectionID),
		fieldTrackID:        structpb.NewStringValue(s.TrackID),
		fieldArtistName:     structpb.NewStringValue(s.ArtistName),
		fieldCollectionName: structpb.NewStringValue(s.CollectionName),
		fieldTrackName:      structpb.NewStringValue(s.TrackName),
		fieldIsStreamable:   structpb.NewBoolValue(s.IsStreamable),
	}
	if s.CollectionCensoredName != nil {
		fields[fieldCollectionCensoredName] = structpb.NewStringValue(*s.CollectionCensoredName)
	}
	if s.TrackCensoredName != nil {
		fields[fieldTrackCensoredName] = structpb.NewStringValue(*s.TrackCensoredName)
	}
	return &structpb.Struct{Fields: fields}
}

func msgToSong(msg *structpb.Struct) songs.Song {
	fields := msg.GetFields()
	str := func(key string) string {
		return fields[key].GetStringValue()
	}
	optStr := func(key string) *string {
		v, ok := fields[key]
		if !ok {
			return nil
		}
		s := v.GetStringValue()
		return &s
	}
	return songs.Song{
		ArtistID:               str(fieldArtistID),
		CollectionID:           str(fieldCollectionID),
		TrackID:                str(fieldTrackID),
		ArtistName:             str(fieldArtistName),
		CollectionName:         str(fieldCollectionName),
		TrackName:              str(fieldTrackName),
		CollectionCensoredName: optStr(fieldCollectionCensoredName),
		TrackCensoredName:      optStr(fieldTrackCensoredName),
		IsStreamable:           fields[fieldIsStreamable].GetBoolValue(),
	}
}
