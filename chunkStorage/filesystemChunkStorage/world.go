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
	"os"
	"path"
	"sort"
)

// ListWorldNames returns directories of Root that have a readable level.dat
func (s *FilesystemChunkStorage) ListWorldNames() ([]string, error) {
	e, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}
	worlds := []string{}
	for _, f := range e {
		if !f.IsDir() {
			continue
		}
		_, err := readLevelName(path.Join(s.Root, f.Name()))
		if err != nil {
			continue
		}
		worlds = append(worlds, f.Name())
	}
	sort.Strings(worlds)
	return worlds, nil
}

// GetLevelName returns the name the world was given in game
func (s *FilesystemChunkStorage) GetLevelName(wname string) (string, error) {
	return readLevelName(path.Join(s.Root, wname))
}
