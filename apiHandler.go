package main

import (
	"encoding/json"
	"log"
	"net/http"
)

// apiHandle adapts handlers returning a status and body. Bodies of 5xx
// answers are logged since clients rarely report them.
func apiHandle(f func(http.ResponseWriter, *http.Request) (int, string)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		code, content := f(w, r)
		if code >= http.StatusInternalServerError {
			log.Printf("%s %s failed with %d: %s", r.Method, r.URL.Path, code, content)
		}
		w.Header().Set("Server", "isochunk "+GitTag+" ("+CommitHash+")")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(code)
		w.Write([]byte(content))
	}
}

func marshalOrFail(code int, content interface{}) (int, string) {
	resp, err := json.Marshal(content)
	if err != nil {
		return http.StatusInternalServerError, "JSON serialization failed: " + err.Error()
	}
	return code, string(resp) + "\n"
}

func setContentTypeJson(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
