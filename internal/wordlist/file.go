package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alucardeht/wordcount/internal/failure"
)

// FileSource reads one or more local files selected by a path or a
// doublestar glob such as "lists/**/*.txt".
type FileSource struct {
	pattern  string
	encoding string
}

func NewFileSource(pattern string, opts Options) *FileSource {
	return &FileSource{
		pattern:  filepath.Clean(pattern),
		encoding: opts.Encoding,
	}
}

func (s *FileSource) String() string {
	return s.pattern
}

func (s *FileSource) Pattern() string {
	return s.pattern
}

// Paths expands the pattern, sorted lexically. Directories are skipped.
func (s *FileSource) Paths() ([]string, error) {
	matches, err := doublestar.FilepathGlob(s.pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, failure.SourceUnavailable(err, "expand %s", s.pattern)
	}
	if len(matches) == 0 {
		return nil, failure.SourceUnavailable(nil, "no word list files match %s", s.pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// Matches reports whether path is one of the files this source reads.
func (s *FileSource) Matches(path string) bool {
	ok, err := doublestar.PathMatch(s.pattern, filepath.Clean(path))
	return err == nil && ok
}

func (s *FileSource) Load(ctx context.Context) ([]string, error) {
	paths, err := s.Paths()
	if err != nil {
		return nil, err
	}

	var words []string
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, failure.SourceUnavailable(err, "load %s", s.pattern)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, failure.SourceUnavailable(err, "read word list file")
		}

		text, err := Decode(data, s.encoding)
		if err != nil {
			return nil, err
		}

		parsed := Parse(text)
		log.Debug("read word list file", "path", path, "words", len(parsed))
		words = append(words, parsed...)
	}

	return words, nil
}
