package game

import (
	"log"
	"net/http"
	_ "net/http/pprof"
)

// ServeProfile serves runtime profiles on address until the process exits.
func ServeProfile(address string) {
	go func() {
		log.Printf("Serving profiles on http://%s/debug/pprof/", address)
		if err := http.ListenAndServe(address, nil); err != nil {
			log.Printf("warning: failed to serve profiles: %s", err)
		}
	}()
}
