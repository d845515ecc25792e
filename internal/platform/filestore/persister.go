// Package filestore implements the filesystem reference Persister named
// as a boundary interface in spec §6: a timestamped output directory,
// created once per run, holding one file per content identifier.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harborcrawl/crawler/internal/crawler"
)

const dirTimeLayout = "2006-01-02--15-04-05--0700"

// Persister writes fetched resources under root_dir/<timestamp>/<contentID>.
type Persister struct {
	dir string
}

// New creates the timestamped output directory under rootDir exactly once
// and returns a Persister rooted there.
func New(rootDir string) (*Persister, error) {
	dir := filepath.Join(rootDir, time.Now().UTC().Format(dirTimeLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output directory: %v", crawler.ErrIO, err)
	}
	return &Persister{dir: dir}, nil
}

// Persist creates or truncates dir/contentID and writes data to it.
func (p *Persister) Persist(contentID string, data []byte) (int, error) {
	f, err := os.Create(filepath.Join(p.dir, contentID))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", crawler.ErrIO, err)
	}
	defer f.Close()

	n, err := f.Write(data)
	if err != nil {
		return n, fmt.Errorf("%w: %v", crawler.ErrIO, err)
	}
	return n, nil
}
