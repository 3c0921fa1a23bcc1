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
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/mem"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
)

func apiListRenderers(w http.ResponseWriter, _ *http.Request) (int, string) {
	type rendererInfo struct {
		Name              string `json:"name"`
		NeedsNeighbours   bool   `json:"needsNeighbours"`
		RequireNeighbours bool   `json:"requireNeighbours"`
	}
	ret := []rendererInfo{}
	for _, r := range renderer.Renderers() {
		ret = append(ret, rendererInfo{
			Name:              r.Name,
			NeedsNeighbours:   r.NeighborsBordering || r.NeighborsCorners,
			RequireNeighbours: r.RequireNeighbors,
		})
	}
	setContentTypeJson(w)
	return marshalOrFail(http.StatusOK, ret)
}

type dimensionInfo struct {
	Name string `json:"name"`
}

type worldInfo struct {
	Name       string          `json:"name"`
	Dimensions []dimensionInfo `json:"dimensions"`
}

type storageInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Online      bool        `json:"online"`
	Status      string      `json:"status,omitempty"`
	ChunksCount uint64      `json:"chunksCount"`
	ChunksSize  string      `json:"chunksSize"`
	Worlds      []worldInfo `json:"worlds"`
	Error       string      `json:"error,omitempty"`
}

func describeStorage(name string, s chunkStorage.Storage) storageInfo {
	ret := storageInfo{Name: name, Type: s.Type, Worlds: []worldInfo{}}
	if s.Driver == nil {
		return ret
	}
	ret.Online = true
	var err error
	ret.Status, err = s.Driver.GetStatus()
	if err != nil {
		ret.Error = err.Error()
		return ret
	}
	ret.ChunksCount, _ = s.Driver.GetChunksCount()
	size, _ := s.Driver.GetChunksSize()
	ret.ChunksSize = humanize.Bytes(size)
	wnames, err := s.Driver.ListWorldNames()
	if err != nil {
		ret.Error = err.Error()
		return ret
	}
	for _, wn := range wnames {
		wi := worldInfo{Name: wn, Dimensions: []dimensionInfo{}}
		dims, err := s.Driver.ListWorldDimensions(wn)
		if err != nil {
			ret.Error = err.Error()
			continue
		}
		for _, d := range dims {
			wi.Dimensions = append(wi.Dimensions, dimensionInfo{Name: d})
		}
		ret.Worlds = append(ret.Worlds, wi)
	}
	return ret
}

func apiStoragesGET(w http.ResponseWriter, _ *http.Request) (int, string) {
	storagesLock.Lock()
	ret := []storageInfo{}
	for _, name := range chunkStorage.StorageNames(storages) {
		ret = append(ret, describeStorage(name, storages[name]))
	}
	storagesLock.Unlock()
	setContentTypeJson(w)
	return marshalOrFail(http.StatusOK, ret)
}

func apiStatus(w http.ResponseWriter, _ *http.Request) (int, string) {
	type status struct {
		BuildTime  string  `json:"buildTime"`
		GitTag     string  `json:"gitTag"`
		CommitHash string  `json:"commitHash"`
		GoVersion  string  `json:"goVersion"`
		Uptime     string  `json:"uptime"`
		Load1      float64 `json:"load1"`
		MemUsed    string  `json:"memUsed"`
		MemTotal   string  `json:"memTotal"`
		Worlds     int     `json:"worlds"`
	}
	ret := status{
		BuildTime:  BuildTime,
		GitTag:     GitTag,
		CommitHash: CommitHash,
		GoVersion:  GoVersion,
	}
	if uptime, err := host.Uptime(); err == nil {
		ret.Uptime = (time.Duration(uptime) * time.Second).String()
	}
	if l, err := load.Avg(); err == nil {
		ret.Load1 = l.Load1
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		ret.MemUsed = humanize.Bytes(vm.Used)
		ret.MemTotal = humanize.Bytes(vm.Total)
	}
	storagesLock.Lock()
	ret.Worlds = len(chunkStorage.ListWorlds(storages))
	storagesLock.Unlock()
	setContentTypeJson(w)
	return marshalOrFail(http.StatusOK, ret)
}
