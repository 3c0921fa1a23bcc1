package main

import (
	"io"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/handlers"
	"github.com/natefinch/lumberjack"
)

// customLogger writes one access line per request, Cloudflare headers win
// over the socket address when present
func customLogger(_ io.Writer, params handlers.LogFormatterParams) {
	r := params.Request
	ip := r.Header.Get("CF-Connecting-IP")
	if ip == "" {
		ip = r.RemoteAddr
	}
	geo := r.Header.Get("CF-IPCountry")
	if geo == "" {
		geo = "??"
	}
	log.Printf("[%s %s] %s %d %s %s [%s]", geo, ip, r.Method, params.StatusCode, r.RequestURI,
		humanize.Bytes(uint64(params.Size)), r.UserAgent())
}

func createLogger() *lumberjack.Logger {
	rotation := cfg.SubTree("logs")
	return &lumberjack.Logger{
		Filename:   cfg.GetDSString("./logs/isochunk.log", "logs_path"),
		MaxSize:    rotation.GetDInt(10, "max_size_mb"),
		MaxBackups: rotation.GetDInt(0, "max_backups"),
		Compress:   true,
	}
}
