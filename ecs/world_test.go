package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/pong/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled entity must not compare equal to the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}

	k := component.NewComponentKind[int]("n")
	if err := Add(w, old, k, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]("int")
		h2 := component.NewComponent[string]("string")
		h3 := component.NewComponent[float64]("float")

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
				},
				teardown: func() bool { return Remove(w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("add_errors", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		k := component.NewComponentKind[int]("int")

		if err := Add(w, e, k, nil); !errors.Is(err, component.ErrNilComponent) {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		var zero component.ComponentKind[int]
		if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
			t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
		}
	})

	t.Run("get_returns_live_pointer", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		k := component.NewComponentKind[int]("int")
		if err := Add(w, e, k, intPtr(1)); err != nil {
			t.Fatal(err)
		}
		v, _ := Get(w, e, k)
		*v = 7
		again, _ := Get(w, e, k)
		if *again != 7 {
			t.Fatalf("expected write through pointer to persist, got %d", *again)
		}
	})
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]("int")

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]("a")
				kb := component.NewComponentKind[int]("b")

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb, intPtr(3)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb, intPtr(4)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, a *int, b *int) {
					if *a != 2 || *b != 3 {
						t.Fatalf("unexpected values a=%d b=%d", *a, *b)
					}
					res = append(res, e)
				})
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]("a")
				kb := component.NewComponentKind[int]("b")

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, kb, intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if !DestroyEntity(w, e) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nothing",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]("a")
				kb := component.NewComponentKind[int]("b")

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka, kb, func(e Entity, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach3(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	ka := component.NewComponentKind[int]("a")
	kb := component.NewComponentKind[int]("b")
	kc := component.NewComponentKind[int]("c")

	for _, e := range []Entity{e1, e2} {
		if err := Add(w, e, ka, intPtr(1)); err != nil {
			t.Fatal(err)
		}
		if err := Add(w, e, kb, intPtr(2)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, e2, kc, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestQueryOrderAndFirst(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]("int")

	ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w)}
	// Insert in reverse so dense order differs from slot order.
	for i := len(ents) - 1; i >= 0; i-- {
		if err := Add(w, ents[i], k, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	got := w.Query(k.ID())
	if len(got) != len(ents) {
		t.Fatalf("expected %d results, got %d", len(ents), len(got))
	}
	for i := range ents {
		if got[i] != ents[i] {
			t.Fatalf("query[%d] = %v, want %v", i, got[i], ents[i])
		}
	}

	first, ok := First(w, k)
	if !ok || first != ents[0] {
		t.Fatalf("First = %v ok=%v, want %v", first, ok, ents[0])
	}

	empty := component.NewComponentKind[int]("empty")
	if _, ok := First(w, empty); ok {
		t.Fatal("First on empty kind should report false")
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventBounce, Data: BounceEvent{Axis: AxisX}})
	q.Push(Event{Type: EventBounce, Data: BounceEvent{Axis: AxisY}})
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 drained events, got %d", len(got))
	}
	if evt := got[1].Data.(BounceEvent); evt.Axis != AxisY {
		t.Fatalf("expected FIFO order, second event axis = %v", evt.Axis)
	}
	if q.Drain() != nil {
		t.Fatal("expected empty queue after drain")
	}
}
