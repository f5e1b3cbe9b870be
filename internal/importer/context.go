package importer

import "github.com/google/uuid"

// ResolutionContext carries the natural-key -> id lookup maps built during a
// multi-stage write. Each stage populates its slice of the context and hands
// it to the next; it is always passed explicitly, never ambient. Maps are
// rebuilt from a fresh read on every import invocation.
type ResolutionContext struct {
	Areas        map[string]uuid.UUID
	Systems      map[string]uuid.UUID
	TestPackages map[string]uuid.UUID
	Drawings     map[string]uuid.UUID // keyed by normalized drawing number
}

// NewResolutionContext returns an empty context with all maps allocated.
func NewResolutionContext() *ResolutionContext {
	return &ResolutionContext{
		Areas:        make(map[string]uuid.UUID),
		Systems:      make(map[string]uuid.UUID),
		TestPackages: make(map[string]uuid.UUID),
		Drawings:     make(map[string]uuid.UUID),
	}
}

func (rc *ResolutionContext) references(rt ReferenceType) map[string]uuid.UUID {
	switch rt {
	case RefArea:
		return rc.Areas
	case RefSystem:
		return rc.Systems
	case RefTestPackage:
		return rc.TestPackages
	}
	return nil
}

// Merge adds name -> id entries to the map for a reference type.
func (rc *ResolutionContext) Merge(rt ReferenceType, m map[string]uuid.UUID) {
	dst := rc.references(rt)
	for name, id := range m {
		dst[name] = id
	}
}

// Resolve returns the id for a reference name, or nil when the name is empty
// or unknown.
func (rc *ResolutionContext) Resolve(rt ReferenceType, name string) *uuid.UUID {
	if name == "" {
		return nil
	}
	if id, ok := rc.references(rt)[name]; ok {
		idCopy := id
		return &idCopy
	}
	return nil
}

// ResolveDrawing returns the id for a normalized drawing number, or nil.
func (rc *ResolutionContext) ResolveDrawing(norm string) *uuid.UUID {
	if norm == "" {
		return nil
	}
	if id, ok := rc.Drawings[norm]; ok {
		idCopy := id
		return &idCopy
	}
	return nil
}
