package pkg

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// TimezoneHeader carries the IANA timezone of the caller, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// RequestLocation returns the caller's location from the "tz" query param or the
// timezone header, falling back to UTC.
func RequestLocation(r *http.Request) *time.Location {
	name := r.URL.Query().Get("tz")
	if name == "" {
		name = r.Header.Get(TimezoneHeader)
	}
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Debugf("unknown timezone [%s]: %s", name, err)
		return time.UTC
	}
	return loc
}

// RequestNow is the current time in the caller's location.
func RequestNow(r *http.Request) time.Time {
	return time.Now().In(RequestLocation(r))
}
