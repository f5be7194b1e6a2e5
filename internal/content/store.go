package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ContentDirEnv overrides the content directory (for testing and deployment).
	ContentDirEnv = "FOLIO_CONTENT_DIR"
	// SiteFile is the content document inside the content directory.
	SiteFile = "site.yaml"
	// StaticDirName holds assets served as-is (CV, reports, images).
	StaticDirName = "static"
)

// ErrNotFound is returned when a lookup by slug matches nothing.
var ErrNotFound = errors.New("not found")

//go:embed site.yaml
var defaultSite []byte

// Store reads the site document from a content directory.
// Layout: <dir>/site.yaml, <dir>/static/...
// With no directory (or no site.yaml in it) the embedded default is used.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir, or at $FOLIO_CONTENT_DIR when dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = os.Getenv(ContentDirEnv)
	}
	return &Store{baseDir: dir}
}

// BaseDir returns the content directory, possibly empty.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SitePath returns the path of site.yaml, or "" if the store has no directory.
func (s *Store) SitePath() string {
	if s.baseDir == "" {
		return ""
	}
	return filepath.Join(s.baseDir, SiteFile)
}

// StaticDir returns the static asset directory, or "" if the store has no directory.
func (s *Store) StaticDir() string {
	if s.baseDir == "" {
		return ""
	}
	return filepath.Join(s.baseDir, StaticDirName)
}

// Load reads and normalizes the site. A missing site.yaml falls back to the
// embedded default; a malformed one is an error.
func (s *Store) Load() (*Site, error) {
	data := defaultSite
	if path := s.SitePath(); path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = b
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Default returns the embedded site.
func Default() *Site {
	site, err := Parse(defaultSite)
	if err != nil {
		panic(fmt.Sprintf("embedded site.yaml: %v", err))
	}
	return site
}

// Parse decodes a site document and normalizes it.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode site: %w", err)
	}
	normalize(&site)
	return &site, nil
}

// normalize assigns missing slugs and collapses technology sets.
func normalize(site *Site) {
	seen := make(map[string]int, len(site.Projects))
	for i := range site.Projects {
		p := &site.Projects[i]
		p.Technologies = dedupe(p.Technologies)
		slug := p.Slug
		if slug == "" {
			slug = Slugify(p.Title)
		}
		if slug == "" {
			slug = "project"
		}
		if n := seen[slug]; n > 0 {
			seen[slug] = n + 1
			slug = fmt.Sprintf("%s-%d", slug, n+1)
		} else {
			seen[slug] = 1
		}
		p.Slug = slug
	}
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
