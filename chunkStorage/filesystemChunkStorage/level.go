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
	"bytes"
	"io"
	"os"
	"path"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

type levelDat struct {
	Data struct {
		LevelName string `nbt:"LevelName"`
		Version   int32  `nbt:"version"`
	} `nbt:"Data"`
}

// reads level name from the gzipped level.dat of a world directory
func readLevelName(dir string) (string, error) {
	b, err := os.ReadFile(path.Join(dir, "level.dat"))
	if err != nil {
		return "", err
	}
	gf, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	defer gf.Close()
	d, err := io.ReadAll(gf)
	if err != nil {
		return "", err
	}
	var l levelDat
	err = nbt.Unmarshal(d, &l)
	if err != nil {
		return "", err
	}
	return l.Data.LevelName, nil
}
