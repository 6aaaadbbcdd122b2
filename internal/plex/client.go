// Package plex is a client for the Plex Media Server XML API, scoped to the
// calls needed to enumerate library contents.
package plex

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/plexdigest/internal/library"
)

// DefaultPageSize is the number of items requested per page on list endpoints.
const DefaultPageSize = 1000

// Plex metadata type numbers accepted by /library/sections/{key}/all.
const (
	typeMovie  = "1"
	typeShow   = "2"
	typeArtist = "8"
)

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL    string
	token      string
	pageSize   int
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a new Plex client. The underlying http.Client has no
// overall timeout; callers bound calls through the context.
func NewClient(baseURL, token string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		pageSize:   DefaultPageSize,
		httpClient: &http.Client{},
		log:        log.With("component", "plex"),
	}
}

// Connect creates a client and verifies the server accepts the token by
// fetching its identity.
func Connect(ctx context.Context, baseURL, token string, log *slog.Logger) (*Client, *Identity, error) {
	c := NewClient(baseURL, token, log)
	id, err := c.Identity(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", c.baseURL, err)
	}
	c.log.Debug("connected", "server", id.Name, "version", id.Version)
	return c, id, nil
}

// Identity holds Plex server identity information.
type Identity struct {
	Name              string
	Version           string
	MachineIdentifier string
}

// identityResponse is the XML response from root endpoint.
type identityResponse struct {
	XMLName           xml.Name `xml:"MediaContainer"`
	FriendlyName      string   `xml:"friendlyName,attr"`
	Version           string   `xml:"version,attr"`
	MachineIdentifier string   `xml:"machineIdentifier,attr"`
}

// Identity returns the Plex server name and version.
func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	var result identityResponse
	if err := c.get(ctx, "/", nil, &result); err != nil {
		return nil, err
	}
	return &Identity{
		Name:              result.FriendlyName,
		Version:           result.Version,
		MachineIdentifier: result.MachineIdentifier,
	}, nil
}

// sectionXML is a library section as listed by /library/sections.
type sectionXML struct {
	Key   string `xml:"key,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name     `xml:"MediaContainer"`
	Sections []sectionXML `xml:"Directory"`
}

// Libraries returns all library sections in the order the server lists them.
func (c *Client) Libraries(ctx context.Context) ([]library.Library, error) {
	var result sectionsResponse
	if err := c.get(ctx, "/library/sections", nil, &result); err != nil {
		return nil, err
	}

	libs := make([]library.Library, len(result.Sections))
	for i, s := range result.Sections {
		libs[i] = library.Library{
			Key:   s.Key,
			Title: norm.NFC.String(s.Title),
			Kind:  library.ParseKind(s.Type),
			Type:  s.Type,
		}
	}
	return libs, nil
}

// Movies returns every movie in a movie library.
func (c *Client) Movies(ctx context.Context, lib library.Library) ([]library.Item, error) {
	return c.list(ctx, sectionPath(lib), typeMovie)
}

// Shows returns every show in a TV library.
func (c *Client) Shows(ctx context.Context, lib library.Library) ([]library.Item, error) {
	return c.list(ctx, sectionPath(lib), typeShow)
}

// Artists returns every artist in a music library.
func (c *Client) Artists(ctx context.Context, lib library.Library) ([]library.Item, error) {
	return c.list(ctx, sectionPath(lib), typeArtist)
}

// Albums returns the albums of an artist.
func (c *Client) Albums(ctx context.Context, artist library.Item) ([]library.Item, error) {
	return c.list(ctx, childrenPath(artist), "")
}

// Tracks returns the tracks of an album.
func (c *Client) Tracks(ctx context.Context, album library.Item) ([]library.Item, error) {
	return c.list(ctx, childrenPath(album), "")
}

func sectionPath(lib library.Library) string {
	return "/library/sections/" + url.PathEscape(lib.Key) + "/all"
}

func childrenPath(item library.Item) string {
	return "/library/metadata/" + url.PathEscape(item.Key) + "/children"
}

// itemXML is the XML representation of a Plex metadata item.
type itemXML struct {
	RatingKey string `xml:"ratingKey,attr"`
	Title     string `xml:"title,attr"`
	Type      string `xml:"type,attr"`
}

// containerResponse is a paged list of items. Movies come back as Video,
// shows, artists and albums as Directory, tracks as Track.
type containerResponse struct {
	XMLName     xml.Name  `xml:"MediaContainer"`
	TotalSize   int       `xml:"totalSize,attr"`
	Offset      *int      `xml:"offset,attr"`
	Videos      []itemXML `xml:"Video"`
	Directories []itemXML `xml:"Directory"`
	Tracks      []itemXML `xml:"Track"`
}

func (r *containerResponse) items() []library.Item {
	all := make([]itemXML, 0, len(r.Videos)+len(r.Directories)+len(r.Tracks))
	all = append(all, r.Videos...)
	all = append(all, r.Directories...)
	all = append(all, r.Tracks...)

	items := make([]library.Item, len(all))
	for i, it := range all {
		items[i] = library.Item{
			Key:   it.RatingKey,
			Title: norm.NFC.String(it.Title),
			Type:  it.Type,
		}
	}
	return items
}

// list reads every page of a list endpoint. A server that ignores the
// paging parameters answers every request with the same page; that is
// detected by a mismatched offset, or without an offset by a repeated page,
// and ends the listing.
func (c *Client) list(ctx context.Context, path, metadataType string) ([]library.Item, error) {
	var items, prev []library.Item
	start := 0
	for {
		q := url.Values{}
		if metadataType != "" {
			q.Set("type", metadataType)
		}
		q.Set("X-Plex-Container-Start", strconv.Itoa(start))
		q.Set("X-Plex-Container-Size", strconv.Itoa(c.pageSize))

		var page containerResponse
		if err := c.get(ctx, path, q, &page); err != nil {
			return nil, err
		}

		batch := page.items()
		if start > 0 && !pagedAt(&page, start, batch, prev) {
			c.log.Debug("server ignored paging", "path", path, "start", start)
			return items, nil
		}
		items = append(items, batch...)
		start += len(batch)
		prev = batch

		switch {
		case len(batch) == 0:
			return items, nil
		case len(batch) > c.pageSize:
			// Server ignored the paging parameters and sent everything.
			return items, nil
		case page.TotalSize > 0 && start >= page.TotalSize:
			return items, nil
		case page.TotalSize == 0 && len(batch) < c.pageSize:
			return items, nil
		}
	}
}

// pagedAt reports whether page is the page starting at start rather than a
// resend of an earlier one.
func pagedAt(page *containerResponse, start int, batch, prev []library.Item) bool {
	if page.Offset != nil {
		return *page.Offset == start
	}
	return !slices.Equal(batch, prev)
}

// get issues an authenticated GET and decodes the XML body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/xml")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("plex request",
		"path", path,
		"start", query.Get("X-Plex-Container-Start"),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
