package system

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gridpaint/capture"
	"github.com/milk9111/gridpaint/ecs"
	"github.com/milk9111/gridpaint/ecs/component"
)

// CaptureSystem queues frame exports during Update and fulfils them in Draw,
// once the grid has been rendered onto the canvas.
type CaptureSystem struct {
	logger    *log.Logger
	rng       *rand.Rand
	writeFile func(img image.Image, dir, name string) (string, error)
	copyImage func(img image.Image) error
}

func NewCaptureSystem(logger *log.Logger, rng *rand.Rand) *CaptureSystem {
	return &CaptureSystem{
		logger:    logger,
		rng:       rng,
		writeFile: capture.WritePNG,
		copyImage: capture.CopyImage,
	}
}

func (c *CaptureSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, input, ok := ecs.First(w, component.InputComponent)
	if !ok || (!input.CapturePressed && !input.ClipboardPressed) {
		return
	}
	_, settings, ok := ecs.First(w, component.SettingsComponent)
	if !ok {
		return
	}

	_, req, ok := ecs.First(w, component.CaptureRequestComponent)
	if !ok {
		req = &component.CaptureRequest{}
		if err := ecs.Add(w, w.CreateEntity(), component.CaptureRequestComponent, req); err != nil {
			panic("capture system: add request: " + err.Error())
		}
	}
	if input.CapturePressed && !req.ToFile {
		req.ToFile = true
		req.Name = capture.FileName(settings.Program, c.rng)
	}
	if input.ClipboardPressed {
		req.ToClipboard = true
	}
}

func (c *CaptureSystem) Draw(w *ecs.World, target *ebiten.Image) {
	if !hasPendingCapture(w) {
		return
	}
	c.fulfil(w, snapshot(target))
}

func hasPendingCapture(w *ecs.World) bool {
	_, ok := w.First(component.CaptureRequestComponent.ID())
	return ok
}

// snapshot copies the target's pixels into CPU memory.
func snapshot(target *ebiten.Image) *image.RGBA {
	b := target.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	target.ReadPixels(img.Pix)
	return img
}

func (c *CaptureSystem) fulfil(w *ecs.World, img image.Image) {
	e, req, ok := ecs.First(w, component.CaptureRequestComponent)
	if !ok {
		return
	}
	defer w.DestroyEntity(e)

	dir := ""
	if _, settings, ok := ecs.First(w, component.SettingsComponent); ok {
		dir = settings.CaptureDir
	}

	if req.ToFile {
		path, err := c.writeFile(img, dir, req.Name)
		if err != nil {
			w.Fail(fmt.Errorf("capture frame: %w", err))
			return
		}
		c.logger.Info("frame captured", "path", path)
		w.Events().Push(ecs.Event{Type: ecs.EventCaptured, Data: ecs.CapturedEvent{Path: path}})
	}

	if req.ToClipboard {
		if err := c.copyImage(img); err != nil {
			c.logger.Error("clipboard copy failed", "err", err)
			return
		}
		c.logger.Info("frame copied to clipboard")
		w.Events().Push(ecs.Event{Type: ecs.EventCaptured, Data: ecs.CapturedEvent{Clipboard: true}})
	}
}
