package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Renderer draws world state onto a target image.
type Renderer interface {
	Draw(w *World, target *ebiten.Image)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Pass is an ordered list of renderers drawing onto the same target.
type Pass []Renderer

func (p Pass) Draw(w *World, target *ebiten.Image) {
	if w == nil || target == nil {
		return
	}
	for _, r := range p {
		if r != nil {
			r.Draw(w, target)
		}
	}
}
