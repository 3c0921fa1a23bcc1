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

package main

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/maxsupermanhd/lac"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
	"github.com/maxsupermanhd/isochunk/chunkStorage/filesystemChunkStorage"
	"github.com/maxsupermanhd/isochunk/chunkStorage/postgresChunkStorage"
	"github.com/maxsupermanhd/isochunk/primitives"
	"github.com/maxsupermanhd/isochunk/render"
)

var (
	errStorageTypeNotImplemented = errors.New("storage type not implemented")
	storages                     map[string]chunkStorage.Storage
	storagesLock                 sync.Mutex
)

func initStorages() error {
	log.Println("Initializing storages...")
	storagesLock.Lock()
	defer storagesLock.Unlock()
	err := cfg.GetToStruct(&storages, "storages")
	if err != nil && !errors.Is(err, lac.ErrNoKey) {
		return err
	}
	if len(storages) == 0 {
		log.Println("No storages to initialize")
		storages = map[string]chunkStorage.Storage{}
		return nil
	}
	for k, v := range storages {
		d, err := initStorage(v.Type, v.Address)
		if err != nil {
			log.Printf("Failed to initialize storage %s: %s", k, err.Error())
			continue
		}
		ver, err := d.GetStatus()
		if err != nil {
			log.Printf("Error getting storage %s status: %s", k, err.Error())
			d.Close()
			continue
		}
		v.Driver = d
		storages[k] = v
		log.Printf("Storage %s initialized: %s", k, ver)
	}
	return nil
}

func initStorage(storageType, address string) (driver chunkStorage.ChunkStorage, err error) {
	switch storageType {
	case "postgres":
		driver, err = postgresChunkStorage.NewPostgresChunkStorage(context.Background(), address)
		if err != nil {
			return nil, err
		}
		return driver, nil
	case "filesystem":
		driver, err = filesystemChunkStorage.NewFilesystemChunkStorage(address)
		if err != nil {
			return nil, err
		}
		return driver, nil
	default:
		return nil, errStorageTypeNotImplemented
	}
}

func closeStorages() {
	storagesLock.Lock()
	defer storagesLock.Unlock()
	if err := chunkStorage.CloseStorages(storages); err != nil {
		log.Println("Failed to close storages: " + err.Error())
	}
}

func worldStorage(wname string) (chunkStorage.ChunkStorage, error) {
	storagesLock.Lock()
	defer storagesLock.Unlock()
	return chunkStorage.GetWorldStorage(storages, wname)
}

// regionSetFor backs the render pipeline with whatever storage has the world
func regionSetFor(loc primitives.TileLocation) (render.RegionSet, error) {
	s, err := worldStorage(loc.World)
	if err != nil {
		return nil, err
	}
	return chunkStorage.NewRegionSet(s, loc.World, loc.Dimension, render.NorthDirection(loc.North)), nil
}
