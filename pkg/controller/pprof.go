package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofHandler serves the net/http/pprof endpoints under prefix, e.g.
// "/debug/pprof/". Named profiles such as heap or goroutine are served by the
// index handler.
func PprofHandler(prefix string) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")

	mux := http.NewServeMux()
	mux.HandleFunc(prefix+"/", pprof.Index)
	mux.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"/profile", pprof.Profile)
	mux.HandleFunc(prefix+"/symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"/trace", pprof.Trace)

	return mux
}
