package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
)

// SPA serves the built client from a fixed asset root. A path that matches a
// real file is served as-is; anything else gets the index document so the
// client router can resolve the route. If the index itself is missing the
// build was never produced, which is the one explicit 404.
type SPA struct{ root string }

func NewSPA(root string) *SPA { return &SPA{root: root} }

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := filepath.Join(s.root, filepath.Clean("/"+r.URL.Path))
	if st, err := os.Stat(p); err == nil && !st.IsDir() {
		http.ServeFile(w, r, p)
		return
	}

	index := filepath.Join(s.root, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.Error(w, "Frontend build not found. Please run the client build first.", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, index)
}
