package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"foundsongs/songs"
)

const (
	DefaultBaseURI = "https://itunes.apple.com/search"
	DefaultTerm    = "breakpoints"
	DefaultMedia   = "music"
	DefaultEntity  = "song"
)

type Cfg struct {
	BaseURI,
	Term,
	Media,
	Entity string
}

func DefaultCfg() Cfg {
	return Cfg{
		BaseURI: DefaultBaseURI,
		Term:    DefaultTerm,
		Media:   DefaultMedia,
		Entity:  DefaultEntity,
	}
}

type Catalog struct {
	cfg Cfg
	c   *http.Client
}

func NewCatalog(rt http.RoundTripper, cfg Cfg) Catalog {
	return Catalog{
		c: &http.Client{
			Transport: rt,
		},
		cfg: cfg,
	}
}

var _ songs.CatalogFetcher = Catalog{}

func (c Catalog) SearchURI() (string, error) {
	u, err := url.Parse(c.cfg.BaseURI)
	if err != nil {
		return "", fmt.Errorf("search uri: %w", err)
	}
	q := u.Query()
	q.Set("term", c.cfg.Term)
	q.Set("media", c.cfg.Media)
	q.Set("entity", c.cfg.Entity)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c Catalog) FetchSongs(ctx context.Context) ([]songs.RawItem, error) {
	handleErr := func(err error) ([]songs.RawItem, error) {
		return nil, fmt.Errorf("catalog: fetch songs: %w", err)
	}
	uri, err := c.SearchURI()
	if err != nil {
		return handleErr(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return handleErr(err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.c.Do(req)
	if err != nil {
		return handleErr(fmt.Errorf("%w: %v", songs.ErrTransport, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return handleErr(fmt.Errorf("%w: response status not ok: %q", songs.ErrTransport, resp.Status))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return handleErr(fmt.Errorf("%w: read body: %v", songs.ErrTransport, err))
	}
	items, err := parseResults(body)
	if err != nil {
		return handleErr(err)
	}
	return items, nil
}

type rawPayload struct {
	Results *[]json.RawMessage `json:"results"`
}

func parseResults(body []byte) ([]songs.RawItem, error) {
	handleErr := func(reason string) ([]songs.RawItem, error) {
		return nil, fmt.Errorf("%w: %s", songs.ErrMalformedPayload, reason)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return handleErr("body is not a json object")
	}
	var p rawPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return handleErr(err.Error())
	}
	if p.Results == nil {
		return handleErr("no results array")
	}
	items := make([]songs.RawItem, 0, len(*p.Results))
	for i, raw := range *p.Results {
		item, ok := toRawItem(raw)
		if !ok {
			return handleErr(fmt.Sprintf("results entry %d is not an object", i))
		}
		items = append(items, item)
	}
	return items, nil
}

func toRawItem(raw json.RawMessage) (songs.RawItem, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var item songs.RawItem
	if err := dec.Decode(&item); err != nil || item == nil {
		return nil, false
	}
	return item, true
}
