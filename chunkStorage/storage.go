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

package chunkStorage

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoWorld        = errors.New("world not found")
	ErrNoDim          = errors.New("dimension not found")
	ErrNoStorage      = errors.New("no storage holds the world")
)

// Storages are read-only sources of chunk columns. Listing returns empty
// slices when nothing is found, errors are only for abnormal things.
type ChunkStorage interface {
	GetStatus() (string, error)
	GetChunksCount() (uint64, error)
	GetChunksSize() (uint64, error)

	ListWorldNames() ([]string, error)
	ListWorldDimensions(wname string) ([]string, error)

	// GetChunkRaw returns the stored chunk prefixed with its compression
	// type byte (1 gzip, 2 zlib, 3 none) or nil, nil if there is no chunk.
	GetChunkRaw(wname, dname string, cx, cz int) ([]byte, error)

	Close() error
}

type Storage struct {
	Type    string       `json:"type"`
	Address string       `json:"addr"`
	Driver  ChunkStorage `json:"-"`
}

func CloseStorages(s map[string]Storage) error {
	var errs *multierror.Error
	for name, c := range s {
		if c.Driver != nil {
			err := c.Driver.Close()
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("closing storage [%v] of type %v: %w", name, c.Type, err))
			}
			c.Driver = nil
			s[name] = c
		}
	}
	return errs.ErrorOrNil()
}

// StorageNames returns storage names in lexical order
func StorageNames(s map[string]Storage) []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ListWorlds maps every world name to the storage holding it. The first
// storage in name order wins when several have the same world.
func ListWorlds(storages map[string]Storage) map[string]string {
	worlds := map[string]string{}
	for _, sn := range StorageNames(storages) {
		s := storages[sn]
		if s.Driver == nil {
			continue
		}
		w, err := s.Driver.ListWorldNames()
		if err != nil {
			log.Printf("Failed to list worlds on storage %s: %s", sn, err.Error())
			continue
		}
		for _, wn := range w {
			if _, ok := worlds[wn]; !ok {
				worlds[wn] = sn
			}
		}
	}
	return worlds
}

func GetWorldStorage(storages map[string]Storage, wname string) (ChunkStorage, error) {
	sn, ok := ListWorlds(storages)[wname]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoStorage, wname)
	}
	return storages[sn].Driver, nil
}
