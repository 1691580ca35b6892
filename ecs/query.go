package ecs

import "github.com/milk9111/ecsdemos/ecs/component"

// snapshot copies the live entities of s so callbacks may add or remove
// components while iterating.
func snapshot(w *World, s store) []Entity {
	if s == nil {
		return nil
	}
	src := s.entities()
	out := make([]Entity, 0, len(src))
	for _, e := range src {
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// smallest returns the store with the fewest entries; nil if any is missing.
func smallest(stores ...store) store {
	var best store
	for _, s := range stores {
		if s == nil {
			return nil
		}
		if best == nil || len(s.entities()) < len(best.entities()) {
			best = s
		}
	}
	return best
}

// ForEach calls fn for every live entity that has a component of kind a.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil {
		return
	}
	for _, e := range snapshot(w, sa) {
		va, ok := sa.get(e.id())
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity that has both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, a, false), storeFor(w, b, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range snapshot(w, smallest(sa, sb)) {
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every live entity that has all three kinds.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeFor(w, a, false), storeFor(w, b, false), storeFor(w, c, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range snapshot(w, smallest(sa, sb, sc)) {
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		vc, okC := sc.get(e.id())
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// ForEach4 calls fn for every live entity that has all four kinds.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa, sb, sc, sd := storeFor(w, a, false), storeFor(w, b, false), storeFor(w, c, false), storeFor(w, d, false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, e := range snapshot(w, smallest(sa, sb, sc, sd)) {
		va, okA := sa.get(e.id())
		vb, okB := sb.get(e.id())
		vc, okC := sc.get(e.id())
		vd, okD := sd.get(e.id())
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, va, vb, vc, vd)
	}
}

// Query returns the live entities carrying every given kind, in store order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, len(kinds))
	for i, k := range kinds {
		stores[i] = w.stores[k.ID()]
	}
	base := smallest(stores...)
	if base == nil {
		return nil
	}
	var out []Entity
	for _, e := range snapshot(w, base) {
		match := true
		for _, s := range stores {
			if !s.has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := snapshot(w, w.stores[kind.ID()])
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
