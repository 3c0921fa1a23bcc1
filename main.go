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
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render/dispatchers"
	"github.com/maxsupermanhd/isochunk/render/renderers"
)

var (
	BuildTime  = "00000000.000000"
	CommitHash = "0000000"
	GoVersion  = "0.0"
	GitTag     = "0.0"
)

var (
	renderer        *dispatchers.PriorityPipelineRender
	metricsRegistry = prometheus.NewRegistry()
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if buildinfo, ok := debug.ReadBuildInfo(); ok {
		GoVersion = buildinfo.GoVersion
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Error loading .env: " + err.Error())
	}
	if err := loadConfig(); err != nil {
		log.Fatal("Error loading config file: " + err.Error())
	}
	log.SetOutput(io.MultiWriter(createLogger(), os.Stdout))
	log.Println()
	log.Println("isochunk is starting up...")
	log.Printf("Built %s, Ver %s (%s)\n", BuildTime, GitTag, CommitHash)
	log.Println()

	blocks.Init()

	if err := initStorages(); err != nil {
		log.Fatal("Error initializing storages: " + err.Error())
	}
	defer closeStorages()

	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	renderCfg := cfg.SubTree("render")
	renderer = dispatchers.NewPriorityRenderer(
		dispatchers.OptionsFromConfig(renderCfg),
		renderers.ConstructRenderers(renderCfg),
		regionSetFor,
		slog.New(slog.NewTextHandler(log.Writer(), nil)),
		dispatchers.NewMetrics(metricsRegistry),
	)
	defer renderer.Close()

	stopWeb := startBackgroundRoutine("web", runWeb)
	defer stopWeb()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Println("Shutting down")
}
