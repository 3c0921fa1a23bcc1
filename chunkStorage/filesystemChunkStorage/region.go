/*
	isochunk, isometric renderer for block game maps
	Copyright (C) 2022 Maxim Zhuchkov

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU Affero General Public License as published
	by the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU Affero General Public License for more details.

	You should have received a copy of the GNU Affero General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.

	Contact me via mail: q3.max.2011@yandex.ru or Discord: MaX#6717
*/

package filesystemChunkStorage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Tnze/go-mc/save/region"
)

type regionLocator struct {
	world     string
	dimension string
	rx, rz    int
}

type regionRequest struct {
	op        regionRouterComand
	world     string
	dimension string
	cx, cz    int
	result    chan interface{}
}

type regionRouterComand int

const (
	regionRouterGetChunk regionRouterComand = iota
	regionRouterCountRegionChunks
)

var errNoResponse = errors.New("no response from region worker")

// region router will recieve requests for operations
// and start a gorutine worker for each different
// region file and route requests to them
func (s *FilesystemChunkStorage) regionRouter() {
	s.l.Println("Region router started for storage", s.Root)
	type regionInterface struct {
		c           chan regionRequest
		lastRequest time.Time
	}
	w := map[regionLocator]*regionInterface{}
	var workers sync.WaitGroup
	autocloseTicker := time.NewTicker(30 * time.Second)
	defer autocloseTicker.Stop()
	scheduleWorker := func(r regionRequest) {
		rx, rz := region.At(r.cx, r.cz)
		l := regionLocator{
			world:     r.world,
			dimension: r.dimension,
			rx:        rx,
			rz:        rz,
		}
		c, ok := w[l]
		if !ok {
			c = &regionInterface{
				c: make(chan regionRequest, 32),
			}
			w[l] = c
			workers.Add(1)
			go func() {
				s.regionWorker(l, c.c)
				workers.Done()
			}()
		}
		c.lastRequest = time.Now()
		c.c <- r
	}
routerLoop:
	for {
		select {
		case <-autocloseTicker.C:
			for k, v := range w {
				if time.Since(v.lastRequest) > 1*time.Minute {
					close(v.c)
					delete(w, k)
				}
			}
		case r, ok := <-s.requests:
			if !ok {
				break routerLoop
			}
			switch r.op {
			case regionRouterGetChunk, regionRouterCountRegionChunks:
				scheduleWorker(r)
			default:
				r.result <- fmt.Errorf("unknown region operation %d", r.op)
			}
		}
	}
	for _, v := range w {
		close(v.c)
	}
	s.l.Println("Waiting for region workers")
	workers.Wait()
	s.l.Println("Region router stopped for storage", s.Root)
	s.wg.Done()
}

var (
	regionFnameRegexp = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mca$`)
)

func (s *FilesystemChunkStorage) getRegionPath(loc regionLocator) string {
	return path.Join(s.getRegionFolder(loc), fmt.Sprintf("r.%d.%d.mca", loc.rx, loc.rz))
}

func ExtractRegionPath(fname string, xx, zz *int) bool {
	r := regionFnameRegexp.FindAllStringSubmatch(fname, -1)
	if len(r) != 1 {
		return false
	}
	if len(r[0]) != 3 {
		return false
	}
	var err error
	var x, z int
	x, err = strconv.Atoi(r[0][1])
	if err != nil {
		return false
	}
	z, err = strconv.Atoi(r[0][2])
	if err != nil {
		return false
	}
	if xx != nil {
		*xx = x
	}
	if zz != nil {
		*zz = z
	}
	return true
}

func (s *FilesystemChunkStorage) getRegionFolder(loc regionLocator) string {
	switch loc.dimension {
	case "overworld":
		return path.Join(s.Root, loc.world, "region")
	case "the_end":
		return path.Join(s.Root, loc.world, "DIM1", "region")
	case "the_nether":
		return path.Join(s.Root, loc.world, "DIM-1", "region")
	default:
		return path.Join(s.Root, loc.world, "dimensions", "isochunk", loc.dimension, "region")
	}
}

// region worker holds the file open and serves requests until the router
// closes its channel. A missing region file means all its chunks are absent.
func (s *FilesystemChunkStorage) regionWorker(loc regionLocator, ch <-chan regionRequest) {
	reg, err := region.Open(s.getRegionPath(loc))
	if err != nil {
		missing := errors.Is(err, os.ErrNotExist)
		if !missing {
			s.l.Printf("Failed to open region %s: %v", s.getRegionPath(loc), err)
		}
		for r := range ch {
			switch {
			case missing && r.op == regionRouterCountRegionChunks:
				r.result <- 0
			case missing:
				r.result <- nil
			default:
				r.result <- err
			}
		}
		return
	}
	defer reg.Close()
	for r := range ch {
		switch r.op {
		case regionRouterGetChunk:
			x, z := region.In(r.cx, r.cz)
			if !reg.ExistSector(x, z) {
				r.result <- nil
				continue
			}
			d, err := reg.ReadSector(x, z)
			if err != nil {
				r.result <- fmt.Errorf("reading sector %d:%d of %s: %w", x, z, s.getRegionPath(loc), err)
			} else {
				r.result <- d
			}
		case regionRouterCountRegionChunks:
			c := 0
			for x := 0; x < 32; x++ {
				for z := 0; z < 32; z++ {
					if reg.ExistSector(x, z) {
						c++
					}
				}
			}
			r.result <- c
		}
	}
}

func (s *FilesystemChunkStorage) GetChunkRaw(wname, dname string, cx, cz int) ([]byte, error) {
	r := make(chan interface{}, 1)
	s.requests <- regionRequest{
		op:        regionRouterGetChunk,
		world:     wname,
		dimension: dname,
		cx:        cx,
		cz:        cz,
		result:    r,
	}
	switch v := (<-r).(type) {
	case error:
		return nil, v
	case []byte:
		return v, nil
	case nil:
		return nil, nil
	default:
		s.l.Printf("GetChunkRaw wrong result %T", v)
	}
	return nil, errNoResponse
}

// CountRegionChunksOpen asks the worker holding the region of chunk cx, cz
// how many chunks the region has
func (s *FilesystemChunkStorage) CountRegionChunksOpen(wname, dname string, cx, cz int) (int, error) {
	r := make(chan interface{}, 1)
	s.requests <- regionRequest{
		op:        regionRouterCountRegionChunks,
		world:     wname,
		dimension: dname,
		cx:        cx,
		cz:        cz,
		result:    r,
	}
	switch v := (<-r).(type) {
	case error:
		return 0, v
	case int:
		return v, nil
	}
	return 0, errNoResponse
}

func (s *FilesystemChunkStorage) GetDimensionChunksCount(wname, dname string) (uint64, error) {
	dirloc := s.getRegionFolder(regionLocator{
		world:     wname,
		dimension: dname,
	})
	d, err := os.ReadDir(dirloc)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		} else {
			return 0, err
		}
	}
	var wg sync.WaitGroup
	var r atomic.Int64
	for _, i := range d {
		if i.IsDir() {
			continue
		}
		if ExtractRegionPath(i.Name(), nil, nil) {
			wg.Add(1)
			go func(fname string) {
				a, err := CountRegionChunks(fname)
				if err != nil {
					s.l.Println("Failed to count region chunks", fname, err)
				}
				r.Add(int64(a))
				wg.Done()
			}(path.Join(dirloc, i.Name()))
		}
	}
	wg.Wait()
	return uint64(r.Load()), nil
}

// counts occupied header space of the region file
func CountRegionChunks(fname string) (int, error) {
	f, err := os.Open(fname)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()
	d := make([]int32, 1024)
	err = binary.Read(f, binary.BigEndian, &d)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, nil
		}
		return 0, err
	}
	s := 0
	for i := 0; i < 1024; i++ {
		if d[i] != 0 {
			s++
		}
	}
	return s, nil
}

func (s *FilesystemChunkStorage) GetDimensionChunksSize(wname, dname string) (r uint64, err error) {
	dirloc := s.getRegionFolder(regionLocator{
		world:     wname,
		dimension: dname,
	})
	d, err := os.ReadDir(dirloc)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		} else {
			return 0, err
		}
	}
	for _, i := range d {
		if i.IsDir() {
			continue
		}
		if ExtractRegionPath(i.Name(), nil, nil) {
			n, err := i.Info()
			if err != nil {
				s.l.Println("Error loading file info", path.Join(dirloc, i.Name()), err)
				continue
			}
			r += uint64(n.Size())
		}
	}
	return r, nil
}
