package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
)

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function is safe to call more than once.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	log.Printf("CPU profile recording to %s", path)
	var once sync.Once
	return func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing CPU profile %s: %v", path, err)
				return
			}
			log.Printf("CPU profile written to %s", path)
		})
	}, nil
}
