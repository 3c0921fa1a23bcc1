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

package postgresChunkStorage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
)

func (s *PostgresChunkStorage) ListWorldDimensions(wname string) ([]string, error) {
	var wid int
	derr := s.DBPool.QueryRow(context.Background(), `SELECT id FROM worlds WHERE name = $1`, wname).Scan(&wid)
	if derr != nil {
		if errors.Is(derr, pgx.ErrNoRows) {
			return nil, chunkStorage.ErrNoWorld
		}
		return nil, derr
	}
	dims := []string{}
	rows, derr := s.DBPool.Query(context.Background(), "SELECT name FROM dimensions WHERE world = $1 ORDER BY name", wname)
	if derr != nil {
		return dims, derr
	}
	defer rows.Close()
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return dims, err
		}
		dims = append(dims, n)
	}
	return dims, rows.Err()
}

// GetDimensionChunksCount counts every stored row of the dimension, old
// versions of a chunk included
func (s *PostgresChunkStorage) GetDimensionChunksCount(wname, dname string) (count uint64, derr error) {
	var dimID int
	derr = s.DBPool.QueryRow(context.Background(),
		`SELECT id FROM dimensions WHERE world = $1 and name = $2`, wname, dname).Scan(&dimID)
	if derr != nil {
		if errors.Is(derr, pgx.ErrNoRows) {
			derr = chunkStorage.ErrNoDim
		}
		return 0, derr
	}
	derr = s.DBPool.QueryRow(context.Background(),
		`SELECT COUNT(id) FROM chunks WHERE dim = $1`, dimID).Scan(&count)
	return count, derr
}
