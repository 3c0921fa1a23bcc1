package main

import (
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/mux"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
	"github.com/maxsupermanhd/isochunk/primitives"
	"github.com/maxsupermanhd/isochunk/render"
	"github.com/maxsupermanhd/isochunk/render/dispatchers"
)

func parseTileLocation(r *http.Request) (primitives.TileLocation, error) {
	params := mux.Vars(r)
	loc := primitives.TileLocation{
		World:     params["world"],
		Dimension: params["dim"],
		Variant:   params["variant"],
	}
	var err error
	loc.X, err = strconv.Atoi(params["cx"])
	if err != nil {
		return loc, fmt.Errorf("bad cx: %w", err)
	}
	loc.Z, err = strconv.Atoi(params["cz"])
	if err != nil {
		return loc, fmt.Errorf("bad cz: %w", err)
	}
	if n := r.URL.Query().Get("north"); n != "" {
		loc.North, err = strconv.Atoi(n)
		if err != nil {
			return loc, fmt.Errorf("bad north: %w", err)
		}
		if !render.NorthDirection(loc.North).Valid() {
			return loc, fmt.Errorf("north %d out of range", loc.North)
		}
	}
	return loc, nil
}

func tileStatus(err error) int {
	switch {
	case errors.Is(err, dispatchers.ErrUnknownVariant), errors.Is(err, chunkStorage.ErrNoStorage):
		return http.StatusNotFound
	case errors.Is(err, dispatchers.ErrClosed):
		return http.StatusServiceUnavailable
	}
	switch dispatchers.Outcome(err) {
	case "ok":
		return http.StatusOK
	case "missing":
		return http.StatusNoContent
	case "neighbour":
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func tileHandler(w http.ResponseWriter, r *http.Request) {
	loc, err := parseTileLocation(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := renderer.Render(r.Context(), loc)
	code := tileStatus(res.Err)
	if code != http.StatusOK {
		if code == http.StatusNoContent {
			w.WriteHeader(code)
			return
		}
		http.Error(w, res.Err.Error(), code)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, res.Img); err != nil {
		log.Printf("Failed to encode tile %s: %s", loc, err)
	}
}

type columnSummary struct {
	Sections     []int
	NonAir       int
	Biomes       map[uint8]int
	TileEntities []render.TileEntity
}

func summarizeColumn(col *render.ColumnData) columnSummary {
	ret := columnSummary{
		Sections:     []int{},
		Biomes:       map[uint8]int{},
		TileEntities: col.TileEntities,
	}
	for i, s := range col.Sections {
		if s == nil {
			continue
		}
		ret.Sections = append(ret.Sections, i)
		for _, b := range s.Blocks {
			if b != 0 {
				ret.NonAir++
			}
		}
	}
	for _, b := range col.Biomes {
		ret.Biomes[b]++
	}
	return ret
}

// debugChunkHandler dumps the decoded column as stored, no rotation applied
func debugChunkHandler(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	cx, err := strconv.Atoi(params["cx"])
	if err != nil {
		http.Error(w, "bad cx", http.StatusBadRequest)
		return
	}
	cz, err := strconv.Atoi(params["cz"])
	if err != nil {
		http.Error(w, "bad cz", http.StatusBadRequest)
		return
	}
	s, err := worldStorage(params["world"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	raw, err := s.GetChunkRaw(params["world"], params["dim"], cx, cz)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if raw == nil {
		http.Error(w, "Chunk not found", http.StatusNotFound)
		return
	}
	col, err := chunkStorage.DecodeColumn(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	spew.Fdump(w, summarizeColumn(col))
}
