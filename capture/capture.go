// Package capture writes rendered frames to PNG files and the clipboard.
package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

const (
	suffixLen    = 10
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	fallbackName = "gridpaint"
)

var ErrNoImage = errors.New("capture: no image")

// ProgramName returns the running executable's base name without extension.
func ProgramName() string {
	exe, err := os.Executable()
	if err != nil {
		return fallbackName
	}
	name := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	if name == "" || name == "." {
		return fallbackName
	}
	return name
}

// FileName returns "<program>_<10 random alphanumerics>.png".
func FileName(program string, rng *rand.Rand) string {
	if program == "" {
		program = fallbackName
	}
	var b strings.Builder
	b.Grow(len(program) + 1 + suffixLen + 4)
	b.WriteString(program)
	b.WriteByte('_')
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphanumeric[rng.IntN(len(alphanumeric))])
	}
	b.WriteString(".png")
	return b.String()
}

// WritePNG encodes img into dir/name and returns the written path. An empty
// dir means the working directory.
func WritePNG(img image.Image, dir, name string) (string, error) {
	if img == nil {
		return "", ErrNoImage
	}
	path := name
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("capture: create %s: %w", dir, err)
		}
		path = filepath.Join(dir, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("capture: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("capture: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("capture: close %s: %w", path, err)
	}
	return path, nil
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyImage places img on the system clipboard as PNG.
func CopyImage(img image.Image) error {
	if img == nil {
		return ErrNoImage
	}
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("capture: clipboard unavailable: %w", clipboardErr)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("capture: encode clipboard image: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
