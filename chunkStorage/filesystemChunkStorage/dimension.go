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

	"github.com/maxsupermanhd/isochunk/chunkStorage"
)

var knownDimensions = []string{"overworld", "the_nether", "the_end"}

func dirExists(p string) bool {
	fi, err := os.Stat(p)
	if err == nil {
		return fi.IsDir()
	} else {
		return false
	}
}

func (s *FilesystemChunkStorage) ListWorldDimensions(wname string) ([]string, error) {
	if !dirExists(path.Join(s.Root, wname)) {
		return nil, chunkStorage.ErrNoWorld
	}
	dims := []string{}
	for _, d := range knownDimensions {
		if dirExists(s.getRegionFolder(regionLocator{world: wname, dimension: d})) {
			dims = append(dims, d)
		}
	}
	return dims, nil
}
