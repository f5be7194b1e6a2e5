package web

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"folio/internal/content"
)

// ExportResult lists what Export wrote, relative to the output directory.
type ExportResult struct {
	Pages  []string
	Assets int
}

// Export writes the page, one fragment per project and a copy of staticDir
// into outDir. staticDir may be empty or missing.
func Export(site *content.Site, outDir, staticDir string) (ExportResult, error) {
	var res ExportResult
	if err := os.MkdirAll(filepath.Join(outDir, "projects"), 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, site); err != nil {
		return res, err
	}
	if err := writeFile(filepath.Join(outDir, "index.html"), buf.Bytes()); err != nil {
		return res, err
	}
	res.Pages = append(res.Pages, "index.html")

	for _, p := range site.Projects {
		buf.Reset()
		if err := RenderProject(&buf, p); err != nil {
			return res, err
		}
		rel := filepath.Join("projects", p.Slug+".html")
		if err := writeFile(filepath.Join(outDir, rel), buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, rel)
	}

	if staticDir == "" {
		return res, nil
	}
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return res, nil
	}
	n, err := copyTree(staticDir, filepath.Join(outDir, content.StaticDirName))
	res.Assets = n
	return res, err
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func copyTree(src, dst string) (int, error) {
	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("copy static assets: %w", err)
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
