package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
	"github.com/maxsupermanhd/isochunk/render/dispatchers"
	"github.com/maxsupermanhd/isochunk/render/renderers"
)

type memoryStorage struct {
	world  string
	chunks map[[2]int][]byte
}

func (s *memoryStorage) GetStatus() (string, error)      { return "memory", nil }
func (s *memoryStorage) GetChunksCount() (uint64, error) { return uint64(len(s.chunks)), nil }
func (s *memoryStorage) GetChunksSize() (uint64, error)  { return 1024, nil }
func (s *memoryStorage) ListWorldNames() ([]string, error) {
	return []string{s.world}, nil
}
func (s *memoryStorage) ListWorldDimensions(wname string) ([]string, error) {
	if wname != s.world {
		return nil, chunkStorage.ErrNoWorld
	}
	return []string{"overworld"}, nil
}
func (s *memoryStorage) GetChunkRaw(wname, dname string, cx, cz int) ([]byte, error) {
	if wname != s.world || dname != "overworld" {
		return nil, nil
	}
	return s.chunks[[2]int{cx, cz}], nil
}
func (s *memoryStorage) Close() error { return nil }

type testSection struct {
	Y      int8   `nbt:"Y"`
	Blocks []byte `nbt:"Blocks"`
}

type testChunk struct {
	Level struct {
		Sections []testSection `nbt:"Sections"`
	} `nbt:"Level"`
}

func stoneChunk(t *testing.T) []byte {
	var c testChunk
	s := testSection{Blocks: make([]byte, render.SectionSize)}
	s.Blocks[render.SectionIndex(0, 0, 0)] = byte(blocks.Stone)
	s.Blocks[render.SectionIndex(4, 1, 4)] = byte(blocks.Stone)
	c.Level.Sections = []testSection{s}
	d, err := nbt.Marshal(c)
	require.NoError(t, err)
	return append([]byte{chunkStorage.CompressionNone}, d...)
}

func setupServer(t *testing.T) http.Handler {
	blocks.Init()
	storages = map[string]chunkStorage.Storage{
		"mem": {
			Type: "memory",
			Driver: &memoryStorage{
				world:  "w",
				chunks: map[[2]int][]byte{{0, 0}: stoneChunk(t)},
			},
		},
		"broken": {Type: "postgres"},
	}
	reg := prometheus.NewRegistry()
	renderer = dispatchers.NewPriorityRenderer(
		dispatchers.Options{QueueNormalLen: 4, QueuePriorityLen: 4, QueueFetchedLen: 4},
		renderers.NewRenderers(renderers.DefaultPalette(), false),
		regionSetFor, nil, dispatchers.NewMetrics(reg))
	t.Cleanup(func() {
		renderer.Close()
		storages = nil
	})
	return createRouter(reg)
}

func get(h http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestTileHandler(t *testing.T) {
	h := setupServer(t)

	rec := get(h, "/tiles/w/overworld/normal/0/0.png")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, renderers.TileWidth, img.Bounds().Dx())
	assert.Equal(t, renderers.TileHeight, img.Bounds().Dy())

	rec = get(h, "/tiles/w/overworld/spawn/0/0.png?north=2")
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, tc := range []struct {
		url  string
		code int
	}{
		{"/tiles/w/overworld/normal/5/-5.png", http.StatusNoContent},
		{"/tiles/w/overworld/normal/0/0.png?north=7", http.StatusBadRequest},
		{"/tiles/w/overworld/normal/0/0.png?north=up", http.StatusBadRequest},
		{"/tiles/w/overworld/isometric/0/0.png", http.StatusNotFound},
		{"/tiles/nope/overworld/normal/0/0.png", http.StatusNotFound},
		{"/tiles/w/overworld/normal/a/0.png", http.StatusNotFound},
	} {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.code, get(h, tc.url).Code)
		})
	}
}

func TestTileStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, tileStatus(nil))
	assert.Equal(t, http.StatusNoContent, tileStatus(&render.LoadError{Required: true, Err: render.ErrChunkNotFound}))
	assert.Equal(t, http.StatusServiceUnavailable, tileStatus(&render.LoadError{DX: 1, Required: true, Err: render.ErrChunkNotFound}))
	assert.Equal(t, http.StatusServiceUnavailable, tileStatus(dispatchers.ErrClosed))
	assert.Equal(t, http.StatusNotFound, tileStatus(chunkStorage.ErrNoStorage))
	assert.Equal(t, http.StatusInternalServerError, tileStatus(chunkStorage.ErrEmptyChunk))
}

func TestApiRenderers(t *testing.T) {
	h := setupServer(t)
	rec := get(h, "/api/v1/renderers")
	require.Equal(t, http.StatusOK, rec.Code)
	var r []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	names := []string{}
	for _, v := range r {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"normal", "lighting", "spawn", "biome"}, names)
}

func TestApiStorages(t *testing.T) {
	h := setupServer(t)
	rec := get(h, "/api/v1/storages")
	require.Equal(t, http.StatusOK, rec.Code)
	var s []storageInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	require.Len(t, s, 2)
	assert.Equal(t, "broken", s[0].Name)
	assert.False(t, s[0].Online)
	assert.Equal(t, "mem", s[1].Name)
	assert.True(t, s[1].Online)
	assert.Equal(t, uint64(1), s[1].ChunksCount)
	assert.Equal(t, []worldInfo{{Name: "w", Dimensions: []dimensionInfo{{Name: "overworld"}}}}, s[1].Worlds)

	rec = get(h, "/api/v1/status")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"worlds":1`)
}

func TestDebugChunk(t *testing.T) {
	h := setupServer(t)
	rec := get(h, "/debug/chunk/w/overworld/0/0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NonAir: (int) 2")

	assert.Equal(t, http.StatusNotFound, get(h, "/debug/chunk/w/overworld/1/0").Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/debug/chunk/nope/overworld/0/0").Code)
}

func TestMetrics(t *testing.T) {
	h := setupServer(t)
	require.Equal(t, http.StatusOK, get(h, "/tiles/w/overworld/normal/0/0.png").Code)
	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `isochunk_render_tiles_total{outcome="ok",variant="normal"} 1`)
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestApiHandleLogsServerErrors(t *testing.T) {
	buf := captureLog(t)
	h := apiHandle(func(_ http.ResponseWriter, _ *http.Request) (int, string) {
		return http.StatusInternalServerError, "storage exploded"
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/storages", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "isochunk "+GitTag+" ("+CommitHash+")", rec.Header().Get("Server"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, buf.String(), "GET /api/v1/storages failed with 500: storage exploded")

	buf.Reset()
	ok := apiHandle(func(_ http.ResponseWriter, _ *http.Request) (int, string) {
		return marshalOrFail(http.StatusOK, []int{1})
	})
	rec = httptest.NewRecorder()
	ok(rec, httptest.NewRequest(http.MethodGet, "/api/v1/renderers", nil))
	assert.Equal(t, "[1]\n", rec.Body.String())
	assert.Empty(t, buf.String())
}

func TestCustomLogger(t *testing.T) {
	buf := captureLog(t)
	r := httptest.NewRequest(http.MethodGet, "/tiles/w/overworld/normal/0/0.png", nil)
	r.Header.Set("CF-Connecting-IP", "10.1.2.3")
	r.Header.Set("User-Agent", "tester")
	customLogger(nil, handlers.LogFormatterParams{Request: r, StatusCode: 200, Size: 2048})
	assert.Contains(t, buf.String(), "[?? 10.1.2.3] GET 200 /tiles/w/overworld/normal/0/0.png 2.0 kB [tester]")
}
