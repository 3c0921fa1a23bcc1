package main

import (
	"log"
	"sync"
)

// startBackgroundRoutine runs workfn until the returned stop function is
// called, stop blocks until workfn returned and is safe to call twice
func startBackgroundRoutine(name string, workfn func(exit <-chan struct{})) (stop func()) {
	log.Printf("Starting %s routine", name)
	exit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		workfn(exit)
	}()
	return sync.OnceFunc(func() {
		log.Printf("Shutting down %s routine", name)
		close(exit)
		<-done
		log.Printf("Routine %s done", name)
	})
}
