package wordlist

import (
	"context"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/alucardeht/wordcount/internal/failure"
	"github.com/alucardeht/wordcount/internal/logger"
)

var log = logger.ForComponent("wordlist")

type HTTPSource struct {
	url      string
	encoding string
	client   *http.Client
}

func NewHTTPSource(url string, opts Options) *HTTPSource {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &HTTPSource{
		url:      url,
		encoding: opts.Encoding,
		client:   client,
	}
}

func (s *HTTPSource) String() string {
	return s.url
}

// Load performs a single GET. Transport errors and non-2xx statuses are
// terminal; nothing is retried.
func (s *HTTPSource) Load(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, failure.SourceUnavailable(err, "build request for %s", s.url)
	}

	log.Debug("fetching word list", "url", s.url)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, failure.SourceUnavailable(err, "fetch word list")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure.SourceUnavailable(nil, "fetch word list: %s returned %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.SourceUnavailable(err, "read word list body")
	}

	text, err := Decode(data, s.encoding)
	if err != nil {
		return nil, err
	}

	words := Parse(text)
	log.Debug("fetched word list", "url", s.url, "size", humanize.Bytes(uint64(len(data))), "words", len(words))
	return words, nil
}
