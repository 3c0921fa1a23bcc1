package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/maxsupermanhd/isochunk/chunkStorage"
	"github.com/maxsupermanhd/isochunk/chunkStorage/filesystemChunkStorage"
	"github.com/maxsupermanhd/isochunk/chunkStorage/postgresChunkStorage"
	"github.com/maxsupermanhd/isochunk/data/blocks"
	"github.com/maxsupermanhd/isochunk/render"
)

var (
	stype      = flag.String("type", "filesystem", "Storage type (filesystem or postgres)")
	saddr      = flag.String("addr", "", "Storage address (directory or connection string)")
	dname      = flag.String("dname", "overworld", "Dim name")
	wname      = flag.String("wname", "", "World name")
	blockID    = flag.Int("block", int(blocks.Portal), "Legacy block id to look for")
	x0         = flag.Int("x0", -32, "Lowest chunk x")
	z0         = flag.Int("z0", -32, "Lowest chunk z")
	x1         = flag.Int("x1", 32, "Highest chunk x (exclusive)")
	z1         = flag.Int("z1", 32, "Highest chunk z (exclusive)")
	outfname   = flag.String("out", "out.txt", "Filename for writing results to")
	threadsnum = flag.Int("threads", 3, "Thread count")
)

func must(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

type xzcoord struct {
	x int
	z int
}

func openStorage(t, addr string) (chunkStorage.ChunkStorage, error) {
	switch t {
	case "filesystem":
		s, err := filesystemChunkStorage.NewFilesystemChunkStorage(addr)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := postgresChunkStorage.NewPostgresChunkStorage(context.Background(), addr)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, errors.New("unknown storage type " + t)
}

// findBlocks lists world positions of every block b in the column
func findBlocks(col *render.ColumnData, cx, cz int, b uint16) []string {
	ret := []string{}
	for si, s := range col.Sections {
		if s == nil {
			continue
		}
		for i, v := range s.Blocks {
			if v != b {
				continue
			}
			x, z, y := i&15, (i>>4)&15, i>>8
			ret = append(ret, fmt.Sprintf("%s at x%d y%d z%d (chunk x%d z%d section %d)",
				blocks.Name(b), cx*16+x, si*16+y, cz*16+z, cx, cz, si))
		}
	}
	return ret
}

func worker(wid int, cs chunkStorage.ChunkStorage, jobs <-chan xzcoord, results chan<- string, wg *sync.WaitGroup) {
	log.Printf("Worker %d started", wid)
	defer wg.Done()
	chunkcount := 0
	for j := range jobs {
		raw, err := cs.GetChunkRaw(*wname, *dname, j.x, j.z)
		must(err)
		if raw == nil {
			continue
		}
		chunkcount++
		col, err := chunkStorage.DecodeColumn(raw)
		if err != nil {
			log.Printf("Chunk x%d z%d: %s", j.x, j.z, err)
			continue
		}
		for _, r := range findBlocks(col, j.x, j.z, uint16(*blockID)) {
			results <- r
		}
	}
	log.Printf("Worker %d exits, processed %d chunks", wid, chunkcount)
}

func filewriter(results <-chan string, done chan<- struct{}) {
	log.Printf("Filewriter thread started")
	file, err := os.OpenFile(*outfname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	must(err)
	defer file.Close()
	linecount := 0
	for r := range results {
		linecount++
		if !strings.HasSuffix(r, "\n") {
			r = r + "\n"
		}
		file.WriteString(r)
	}
	log.Printf("File writer exits, wrote %d lines", linecount)
	close(done)
}

func main() {
	flag.Parse()
	if *saddr == "" || *wname == "" {
		log.Fatalln("Storage address and world name must be set")
	}
	blocks.Init()
	cs, err := openStorage(*stype, *saddr)
	must(err)
	defer cs.Close()

	coordlist := make([]xzcoord, 0)
	for x := *x0; x < *x1; x++ {
		for z := *z0; z < *z1; z++ {
			coordlist = append(coordlist, xzcoord{x, z})
		}
	}

	jobs := make(chan xzcoord, 64)
	results := make(chan string)
	done := make(chan struct{})
	wg := new(sync.WaitGroup)
	go filewriter(results, done)
	for w := 0; w < *threadsnum; w++ {
		wg.Add(1)
		go worker(w, cs, jobs, results, wg)
	}
	prevchunks := 0
	starttime := time.Now()
	prevtime := time.Now()
	for i, coords := range coordlist {
		jobs <- coords
		if time.Since(prevtime) > 1*time.Second {
			deltachunks := i - prevchunks
			deltatime := time.Since(prevtime)
			log.Printf("Processed %10d chunks, %10d to go (%06.2f%%) (%6.0f chunks/s)",
				i, len(coordlist)-i, float32(i)/float32(len(coordlist))*100,
				float64(deltachunks)/deltatime.Seconds())
			prevtime = time.Now()
			prevchunks = i
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	<-done

	log.Printf("Processed %d chunks in %s", len(coordlist), time.Since(starttime).Round(time.Second))
}
