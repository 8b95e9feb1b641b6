// Package assets maintains the pool of obtainable item identifiers, sourced
// from the image files in the configured folder.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type Pool struct {
	dir   string
	files []string
}

// New creates a pool for dir and scans it. An empty or missing folder yields
// an empty pool, not an error.
func New(dir string) (*Pool, error) {
	p := &Pool{dir: dir}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// Refresh rescans the folder.
func (p *Pool) Refresh() error {
	p.files = nil
	if p.dir == "" {
		return nil
	}
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("scan assets folder: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if validExtensions[ext] {
			p.files = append(p.files, e.Name())
		}
	}
	sort.Strings(p.files)
	return nil
}

// SetDir changes the folder and rescans.
func (p *Pool) SetDir(dir string) error {
	p.dir = dir
	return p.Refresh()
}

func (p *Pool) Dir() string { return p.dir }

func (p *Pool) Empty() bool { return len(p.files) == 0 }

func (p *Pool) Size() int { return len(p.files) }

// List returns the candidate item identifiers (file names) in sorted order.
func (p *Pool) List() []string {
	out := make([]string, len(p.files))
	copy(out, p.files)
	return out
}

// PathFor returns the on-disk path for an item identifier.
func (p *Pool) PathFor(id string) string {
	if p.dir == "" {
		return ""
	}
	return filepath.Join(p.dir, id)
}
