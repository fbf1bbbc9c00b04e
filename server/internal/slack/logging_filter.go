package slack

import (
	"log"
	"net/http"

	libHTTP "github.com/brigadecore/brigade-foundations/http"
)

// loggingFilter is a component that implements the http.Filter interface
// and logs every inbound request before handing it on.
type loggingFilter struct{}

// NewLoggingFilter returns a component that implements the http.Filter
// interface and logs every inbound request before handing it on.
func NewLoggingFilter() libHTTP.Filter {
	return &loggingFilter{}
}

func (l *loggingFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		handle(w, r)
	}
}
