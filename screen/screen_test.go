package screen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"foundsongs/songs"
	"foundsongs/songs/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	renders [][]Row
	err     error
}

func (r *recordingRenderer) Render(rows []Row) error {
	r.renders = append(r.renders, rows)
	return r.err
}

type fakeFetcher struct {
	items []songs.RawItem
	err   error
}

func (f fakeFetcher) FetchSongs(context.Context) ([]songs.RawItem, error) {
	return f.items, f.err
}

type memStore struct {
	sngs []songs.Song
}

func (m *memStore) SaveSongs(_ context.Context, sngs []songs.Song) error {
	m.sngs = sngs
	return nil
}

func (m *memStore) LoadSongs(context.Context) ([]songs.Song, error) {
	if m.sngs == nil {
		return nil, songs.ErrNotFound
	}
	return m.sngs, nil
}

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func runLoop(t *testing.T) *Loop {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	loop := NewLoop()
	go func() { _ = loop.Run(ctx) }()
	return loop
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("screen did not finish opening")
	}
}

func TestScreenOpenShowsFilteredRows(t *testing.T) {
	rr := &recordingRenderer{}
	st := &memStore{}
	uc := usecase.New(fakeFetcher{items: []songs.RawItem{
		{"artistName": "Ryan Dempsey", "trackName": "Song A", "isStreamable": true},
		{"artistName": "Other", "trackName": "Song B"},
	}}, st, discard())
	s := New(runLoop(t), NewListPresenter(rr, discard()), uc, discard())
	require.Equal(t, Empty, s.Presenter().State())

	wait(t, s.Open(context.Background()))

	p := s.Presenter()
	assert.Equal(t, Loaded, p.State())
	require.Equal(t, 2, p.RowCount())
	assert.Equal(t, Row{Title: "Song A", Subtitle: "Ryan Dempsey"}, p.Row(0))
	assert.Equal(t, Row{}, p.Row(1))
	require.Len(t, rr.renders, 1, "renders exactly once")
	assert.Equal(t, p.Rows(), rr.renders[0])
	assert.Equal(t, []songs.Song{
		{ArtistName: "Ryan Dempsey", TrackName: "Song A", IsStreamable: true},
		{},
	}, st.sngs)
}

func TestScreenOpenTransportFailureKeepsState(t *testing.T) {
	rr := &recordingRenderer{}
	st := &memStore{}
	uc := usecase.New(fakeFetcher{err: songs.ErrTransport}, st, discard())
	var logs bytes.Buffer
	s := New(runLoop(t), NewListPresenter(rr, discard()), uc, log.New(&logs, "", 0))

	wait(t, s.Open(context.Background()))

	assert.Equal(t, Empty, s.Presenter().State())
	assert.Equal(t, 0, s.Presenter().RowCount())
	assert.Empty(t, rr.renders)
	assert.Nil(t, st.sngs)
	assert.Contains(t, logs.String(), "transport")
}

func TestScreenOpenMalformedPayloadKeepsPreviousRows(t *testing.T) {
	rr := &recordingRenderer{}
	p := NewListPresenter(rr, discard())
	p.Set([]songs.Song{{ArtistName: "Ryan Dempsey", TrackName: "Old"}})
	uc := usecase.New(fakeFetcher{err: songs.ErrMalformedPayload}, &memStore{}, discard())
	s := New(runLoop(t), p, uc, discard())

	wait(t, s.Open(context.Background()))

	assert.Equal(t, Loaded, p.State())
	require.Equal(t, 1, p.RowCount())
	assert.Equal(t, "Old", p.Row(0).Title)
	assert.Len(t, rr.renders, 1)
}

func TestPresenterRenderErrorIsLogged(t *testing.T) {
	var logs bytes.Buffer
	p := NewListPresenter(&recordingRenderer{err: errors.New("broken pipe")}, log.New(&logs, "", 0))
	p.Set([]songs.Song{{}})
	assert.Equal(t, Loaded, p.State())
	assert.Contains(t, logs.String(), "broken pipe")
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	err := NewTableRenderer(&buf).Render([]Row{
		{Title: "Song A", Subtitle: "Ryan Dempsey"},
		{},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "SUBTITLE")
	assert.Contains(t, out, "Song A")
	assert.Contains(t, out, "Ryan Dempsey")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestLoopPostAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lp := &Loop{queue: make(chan func())}
	assert.ErrorIs(t, lp.Post(ctx, func() {}), context.Canceled)
	assert.ErrorIs(t, lp.Run(ctx), context.Canceled)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "loaded", Loaded.String())
}
