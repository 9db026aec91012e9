package ecs

import (
	"errors"
	"fmt"
)

var (
	ErrNilSystem         = errors.New("ecs: system is nil")
	ErrDuplicateSystem   = errors.New("ecs: duplicate system name")
	ErrUnknownDependency = errors.New("ecs: unknown system dependency")
)

type System interface {
	Update(w *World, f *Frame)
}

type namedSystem struct {
	name   string
	deps   []string
	system System
}

// Scheduler runs systems once per frame. A system may only depend on
// systems registered before it, so registration order is always a valid
// execution order and cycles cannot be expressed.
type Scheduler struct {
	systems   []namedSystem
	index     map[string]int
	renderers []RenderSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{index: make(map[string]int)}
}

// Add registers system under name, to run after every system in deps.
func (s *Scheduler) Add(name string, system System, deps ...string) error {
	if system == nil {
		return fmt.Errorf("scheduler: add %q: %w", name, ErrNilSystem)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("scheduler: add %q: %w", name, ErrDuplicateSystem)
	}
	for _, dep := range deps {
		if _, ok := s.index[dep]; !ok {
			return fmt.Errorf("scheduler: add %q: depends on %q: %w", name, dep, ErrUnknownDependency)
		}
	}
	s.index[name] = len(s.systems)
	s.systems = append(s.systems, namedSystem{
		name:   name,
		deps:   append([]string(nil), deps...),
		system: system,
	})
	return nil
}

// AddRenderer appends a draw pass.
func (s *Scheduler) AddRenderer(r RenderSystem) {
	if r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Update runs every system once in order, then drops unconsumed events.
func (s *Scheduler) Update(w *World, f *Frame) {
	if s == nil || w == nil {
		return
	}
	for _, ns := range s.systems {
		ns.system.Update(w, f)
	}
	w.events.flush()
}

// Order returns the registered system names in execution order.
func (s *Scheduler) Order() []string {
	names := make([]string, 0, len(s.systems))
	for _, ns := range s.systems {
		names = append(names, ns.name)
	}
	return names
}

// Dependencies returns the declared dependencies of the named system.
func (s *Scheduler) Dependencies(name string) []string {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return append([]string(nil), s.systems[i].deps...)
}
