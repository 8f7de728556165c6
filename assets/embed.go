package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed palettes/*.tengo
var assetsFS embed.FS

// BuiltinPrefix marks a palette script reference as embedded, as in
// "builtin:warm".
const BuiltinPrefix = "builtin:"

var ErrUnknownPalette = errors.New("assets: unknown palette")

// Builtin reports whether ref names an embedded palette and returns its name.
func Builtin(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, BuiltinPrefix)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// Palettes lists the embedded palette names in sorted order.
func Palettes() []string {
	matches, err := fs.Glob(assetsFS, "palettes/*.tengo")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tengo"))
	}
	sort.Strings(names)
	return names
}

// Palette returns the source of the embedded palette script called name.
func Palette(name string) ([]byte, error) {
	b, err := LoadFile(path.Join("palettes", name+".tengo"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownPalette, name, strings.Join(Palettes(), ", "))
	}
	return b, err
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(name string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(name))
}

func cleanAssetPath(name string) string {
	s := filepath.ToSlash(name)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
