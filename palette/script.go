package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

var ErrScriptOutput = errors.New("palette: script must define r, g and b")

// Script is a Source backed by a tengo script. The script reads the globals
// x, y (square center in world space) and seed (a fresh random integer per
// call) and must define r, g and b. Channels are clamped to [0, 254].
//
//	r := (seed % 128) + 64
//	g := x > 0 ? 200 : 40
//	b := 90
type Script struct {
	compiled *tengo.Compiled
	rng      *rand.Rand
	fallback Source
	onError  func(error)
	reported bool
}

// NewScript compiles src. Colors fall back to a Random source sharing rng
// whenever the script fails at runtime; onError, when non-nil, is told about
// the first such failure.
func NewScript(src []byte, rng *rand.Rand, onError func(error)) (*Script, error) {
	if rng == nil {
		rng = NewRand()
	}

	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("seed", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("palette: compile script: %w", err)
	}

	return &Script{
		compiled: compiled,
		rng:      rng,
		fallback: NewRandom(rng),
		onError:  onError,
	}, nil
}

// Eval runs the script once for a square centered at p.
func (s *Script) Eval(p cp.Vector) (color.RGBA, error) {
	if err := s.compiled.Set("x", p.X); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: set x: %w", err)
	}
	if err := s.compiled.Set("y", p.Y); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: set y: %w", err)
	}
	if err := s.compiled.Set("seed", s.rng.Int64()); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: set seed: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: run script: %w", err)
	}

	for _, name := range []string{"r", "g", "b"} {
		if !s.compiled.IsDefined(name) {
			return color.RGBA{}, ErrScriptOutput
		}
	}

	return color.RGBA{
		R: channel(s.compiled.Get("r").Int()),
		G: channel(s.compiled.Get("g").Int()),
		B: channel(s.compiled.Get("b").Int()),
		A: 0xff,
	}, nil
}

func (s *Script) Color(p cp.Vector) color.RGBA {
	c, err := s.Eval(p)
	if err == nil {
		return c
	}
	if !s.reported && s.onError != nil {
		s.reported = true
		s.onError(err)
	}
	return s.fallback.Color(p)
}

func channel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 254 {
		return 254
	}
	return uint8(v)
}
