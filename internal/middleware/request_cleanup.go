package middleware

import (
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// MaxDrainBytes bounds how much of an unread request body is discarded after a handler.
// Connections with a bigger leftover body are not reused.
const MaxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what the handler left unread of the request body,
// up to maxDrain bytes, so keep-alive connections can be reused, then closes it.
func DrainAndCloseRequest(maxDrain int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if _, err := io.CopyN(io.Discard, r.Body, maxDrain); err != nil && !errors.Is(err, io.EOF) {
				log.Tracef("drain request body %s: %s", r.URL.Path, err)
			}
			_ = r.Body.Close()
		})
	}
}
