package ecs

import (
	"errors"
	"reflect"
	"testing"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(w *World, f *Frame) {
	*r.log = append(*r.log, r.name)
}

type pushSystem struct{}

func (pushSystem) Update(w *World, f *Frame) {
	w.Events().Push(Event{Type: EventBounce})
}

func TestSchedulerAdd(t *testing.T) {
	tests := []struct {
		name    string
		sysName string
		system  System
		deps    []string
		wantErr error
	}{
		{name: "ok_no_deps", sysName: "c", system: recordSystem{}, wantErr: nil},
		{name: "ok_with_dep", sysName: "c", system: recordSystem{}, deps: []string{"a"}, wantErr: nil},
		{name: "duplicate", sysName: "a", system: recordSystem{}, wantErr: ErrDuplicateSystem},
		{name: "unknown_dep", sysName: "c", system: recordSystem{}, deps: []string{"missing"}, wantErr: ErrUnknownDependency},
		{name: "nil_system", sysName: "c", system: nil, wantErr: ErrNilSystem},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			s := NewScheduler()
			if err := s.Add("a", recordSystem{name: "a", log: &log}); err != nil {
				t.Fatal(err)
			}
			if err := s.Add("b", recordSystem{name: "b", log: &log}, "a"); err != nil {
				t.Fatal(err)
			}

			err := s.Add(tc.sysName, tc.system, tc.deps...)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSchedulerUpdateRunsInOrderAndFlushesEvents(t *testing.T) {
	var log []string
	s := NewScheduler()
	for _, step := range []struct {
		name string
		deps []string
	}{
		{"input", nil},
		{"paddle", []string{"input"}},
		{"ball", nil},
		{"bounce", []string{"ball"}},
	} {
		if err := s.Add(step.name, recordSystem{name: step.name, log: &log}, step.deps...); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Add("push", pushSystem{}); err != nil {
		t.Fatal(err)
	}

	w := NewWorld()
	s.Update(w, &Frame{Delta: 1.0 / 60})

	want := []string{"input", "paddle", "ball", "bounce"}
	if !reflect.DeepEqual(log, want) {
		t.Fatalf("run order = %v, want %v", log, want)
	}
	if !reflect.DeepEqual(s.Order(), append(want, "push")) {
		t.Fatalf("Order() = %v", s.Order())
	}
	if deps := s.Dependencies("bounce"); !reflect.DeepEqual(deps, []string{"ball"}) {
		t.Fatalf("Dependencies(bounce) = %v", deps)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed at end of frame, got %d", w.Events().Len())
	}
}

type fixedAxes map[string]float64

func (a fixedAxes) AxisValue(name string) (float64, bool) {
	v, ok := a[name]
	return v, ok
}

func TestFrameNilSafety(t *testing.T) {
	var f *Frame
	if v, ok := f.AxisValue("left_paddle"); ok || v != 0 {
		t.Fatalf("nil frame AxisValue = %v, %v", v, ok)
	}
	if f.DeltaSeconds() != 0 {
		t.Fatal("nil frame DeltaSeconds should be zero")
	}

	f = &Frame{Delta: 0.5, Axes: fixedAxes{"left_paddle": -1}}
	if v, ok := f.AxisValue("left_paddle"); !ok || v != -1 {
		t.Fatalf("AxisValue = %v, %v", v, ok)
	}
	if _, ok := f.AxisValue("right_paddle"); ok {
		t.Fatal("unbound axis should report false")
	}
}
