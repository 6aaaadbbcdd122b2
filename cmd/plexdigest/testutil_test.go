package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// plexFixture serves the Films/Shows/Tunes/Photos library set:
// 3 movies, 2 shows, one artist with albums of 2 and 1 tracks.
var plexFixture = map[string]string{
	"/": `<MediaContainer friendlyName="velcro" version="1.42.2"/>`,
	"/library/sections": `<MediaContainer size="4">
  <Directory key="1" title="Films" type="movie"/>
  <Directory key="2" title="Shows" type="show"/>
  <Directory key="9" title="Photos" type="photo"/>
  <Directory key="3" title="Tunes" type="artist"/>
</MediaContainer>`,
	"/library/sections/1/all": `<MediaContainer totalSize="3">
  <Video ratingKey="101" title="A" type="movie"/>
  <Video ratingKey="102" title="B" type="movie"/>
  <Video ratingKey="103" title="C" type="movie"/>
</MediaContainer>`,
	"/library/sections/2/all": `<MediaContainer totalSize="2">
  <Directory ratingKey="201" title="S1" type="show"/>
  <Directory ratingKey="202" title="S2" type="show"/>
</MediaContainer>`,
	"/library/sections/3/all": `<MediaContainer totalSize="1">
  <Directory ratingKey="301" title="Artist" type="artist"/>
</MediaContainer>`,
	"/library/metadata/301/children": `<MediaContainer totalSize="2">
  <Directory ratingKey="401" title="First" type="album"/>
  <Directory ratingKey="402" title="Second" type="album"/>
</MediaContainer>`,
	"/library/metadata/401/children": `<MediaContainer totalSize="2">
  <Track ratingKey="501" title="t1" type="track"/>
  <Track ratingKey="502" title="t2" type="track"/>
</MediaContainer>`,
	"/library/metadata/402/children": `<MediaContainer totalSize="1">
  <Track ratingKey="503" title="t3" type="track"/>
</MediaContainer>`,
}

const fixtureReport = "Films: 3 movies\nShows: 2 shows\nTunes: 2 albums, 3 tracks\n"

// newPlexServer serves responses by path. A path mapped to "" answers 500.
func newPlexServer(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Plex-Token") != testToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := responses[r.URL.Path]
		switch {
		case !ok:
			w.WriteHeader(http.StatusNotFound)
		case body == "":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// webhookRecorder captures posted payloads.
type webhookRecorder struct {
	mu       sync.Mutex
	payloads []map[string]string
}

func (rec *webhookRecorder) all() []map[string]string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]map[string]string(nil), rec.payloads...)
}

func newWebhookServer(t *testing.T, status int) (*httptest.Server, *webhookRecorder) {
	t.Helper()
	rec := &webhookRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var p map[string]string
		assert.NoError(t, json.Unmarshal(body, &p))
		rec.mu.Lock()
		rec.payloads = append(rec.payloads, p)
		rec.mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

// writeTestConfig writes a config pointing at the given servers.
func writeTestConfig(t *testing.T, host, hook, username string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[config]
token = "` + testToken + `"
host = "` + host + `"
webhook = "` + hook + `"
username = "` + username + `"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
