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
	"fmt"
	"log"
	"sync"
)

// FilesystemChunkStorage reads worlds saved by the game. Root holds one
// directory per world.
type FilesystemChunkStorage struct {
	Root     string
	requests chan regionRequest
	wg       sync.WaitGroup
	l        *log.Logger
}

func NewFilesystemChunkStorage(root string) (*FilesystemChunkStorage, error) {
	r := FilesystemChunkStorage{
		Root:     root,
		requests: make(chan regionRequest, 128),
		l:        log.Default(),
	}
	r.wg.Add(1)
	go r.regionRouter()
	return &r, nil
}

// Close stops region workers, storage must not be used afterwards
func (s *FilesystemChunkStorage) Close() error {
	close(s.requests)
	s.wg.Wait()
	return nil
}

func (s *FilesystemChunkStorage) GetStatus() (ver string, err error) {
	w, err := s.ListWorldNames()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("filesystem storage at %s with %d worlds", s.Root, len(w)), nil
}

func (s *FilesystemChunkStorage) GetChunksCount() (chunksCount uint64, derr error) {
	derr = s.eachDimension(func(wname, dname string) error {
		c, err := s.GetDimensionChunksCount(wname, dname)
		chunksCount += c
		return err
	})
	return
}

func (s *FilesystemChunkStorage) GetChunksSize() (chunksSize uint64, derr error) {
	derr = s.eachDimension(func(wname, dname string) error {
		c, err := s.GetDimensionChunksSize(wname, dname)
		chunksSize += c
		return err
	})
	return
}

func (s *FilesystemChunkStorage) eachDimension(f func(wname, dname string) error) error {
	worlds, err := s.ListWorldNames()
	if err != nil {
		return err
	}
	for _, w := range worlds {
		dims, err := s.ListWorldDimensions(w)
		if err != nil {
			return err
		}
		for _, d := range dims {
			if err := f(w, d); err != nil {
				return err
			}
		}
	}
	return nil
}
