package songs

import (
	"context"
	"errors"
)

// StoreKey is the key the filtered result set is persisted under.
const StoreKey = "foundSongs"

type Song struct {
	ArtistID,
	CollectionID,
	TrackID,
	ArtistName,
	CollectionName,
	TrackName string
	CollectionCensoredName,
	TrackCensoredName *string
	IsStreamable bool
}

// RawItem is one undecoded entry of the catalog "results" array.
type RawItem map[string]any

type CatalogFetcher interface {
	FetchSongs(ctx context.Context) ([]RawItem, error)
}

type Store interface {
	SaveSongs(ctx context.Context, sngs []Song) error
	LoadSongs(ctx context.Context) ([]Song, error)
}

var (
	ErrTransport        = errors.New("transport")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrEncodingFailed   = errors.New("encoding failed")
	ErrNotFound         = errors.New("not found")
)
