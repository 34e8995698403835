// Package wordlist loads the candidate vocabulary from a URL or from local
// files and turns it into a flat list of words.
package wordlist

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Source produces the full word list. Load either returns every word or a
// failure.KindSourceUnavailable error; there are no partial results.
type Source interface {
	Load(ctx context.Context) ([]string, error)
	String() string
}

type Options struct {
	Timeout  time.Duration
	Encoding string
	Client   *http.Client
}

// IsRemote reports whether location is an http(s) URL rather than a local
// path or glob.
func IsRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

func New(location string, opts Options) Source {
	if IsRemote(location) {
		return NewHTTPSource(location, opts)
	}
	return NewFileSource(location, opts)
}
