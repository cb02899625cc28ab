package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wesen/studio/internal/apperr"
)

//go:embed templates/*.toml
var builtinFS embed.FS

type catalogFile struct {
	Categories []Category `toml:"categories"`
}

// Builtin returns the catalog shipped with the binary.
func Builtin() (*Catalog, error) {
	cats, err := readFS(builtinFS, "templates")
	if err != nil {
		return nil, err
	}
	return New(cats)
}

// Load merges the built-in catalog with plugin TOML files found in
// pluginDir. A missing plugin directory is fine; a malformed plugin file
// is an error so a typo does not silently hide templates.
func Load(pluginDir string) (*Catalog, error) {
	cats, err := readFS(builtinFS, "templates")
	if err != nil {
		return nil, err
	}
	if pluginDir != "" {
		extra, err := readFS(os.DirFS(pluginDir), ".")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(err, "loading plugin templates from "+filepath.Clean(pluginDir))
		}
		cats = append(cats, extra...)
	}
	return New(cats)
}

// LoadFS reads every *.toml file in dir of fsys, in name order.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	cats, err := readFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	return New(cats)
}

func readFS(fsys fs.FS, dir string) ([]Category, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var all []Category
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		var cf catalogFile
		if err := toml.Unmarshal(data, &cf); err != nil {
			return nil, apperr.NewValidation("parsing %s: %v", entry.Name(), err)
		}
		all = append(all, cf.Categories...)
	}
	return all, nil
}
