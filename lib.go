package troll

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/troll/statik"
)

//go:generate statik -src=lib

// Library maps preset names to expressions.
type Library map[string]string

// Lookup returns the expression saved as s, or s itself when there is no
// such preset.
func (l Library) Lookup(s string) string {
	if src, ok := l[strings.TrimSpace(s)]; ok {
		return src
	}
	return s
}

// Load reads `name = expression` lines from r. Blank lines and lines
// starting with '#' are skipped. Every expression must parse.
func (l Library) Load(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.IndexByte(line, '=')
		if i < 0 {
			return fmt.Errorf("%s:%d: missing '='", name, lineno)
		}
		key := strings.TrimSpace(line[:i])
		if !isPresetName(key) {
			return fmt.Errorf("%s:%d: invalid preset name %q", name, lineno, key)
		}
		src := strings.TrimSpace(line[i+1:])
		if _, err := Parse(src); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		l[key] = src
	}
	return scanner.Err()
}

func isPresetName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// loadFile loads the presets of one file of fsys.
func (l Library) loadFile(fsys http.FileSystem, name string) error {
	f, err := fsys.Open(path.Join("/", name))
	if err != nil {
		return err
	}
	defer f.Close()
	return l.Load(f, name)
}

// LoadLib loads the presets bundled from the lib directory.
func LoadLib(lib Library) error {
	presets, err := fs.New()
	if err != nil {
		return fmt.Errorf("open presets: %w", err)
	}
	root, err := presets.Open("/")
	if err != nil {
		return fmt.Errorf("open presets: %w", err)
	}
	fis, err := root.Readdir(-1)
	root.Close()
	if err != nil {
		return fmt.Errorf("list presets: %w", err)
	}
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".troll" {
			continue
		}
		if err := lib.loadFile(presets, fi.Name()); err != nil {
			return err
		}
	}
	return nil
}
