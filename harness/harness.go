// Package harness describes, but does not implement, the external
// interception harness a host process would use to splice the collision
// core's segment test into a running binary. The real harness scans code
// sections for a function's byte pattern and rewrites its prologue with a
// jump to the engine's entry point; that code-patching machinery is out
// of scope here. What this package captures is the two contracts the
// core actually depends on: a stable hook-registration point, and a
// journal of reversible setup actions so a host can undo them on
// shutdown.
package harness

import "fmt"

// EntryPoint is the logical shape the harness hooks into: the same
// argument list test_segment takes, independent of whatever calling
// convention the host's interception trampoline actually uses to reach
// it.
type EntryPoint func(params SegmentParams) SegmentResult

// SegmentParams mirrors collision.TestSegment's arguments in a form that
// does not depend on package collision, keeping this package free of a
// dependency the out-of-scope harness would not actually need.
type SegmentParams struct {
	OriginX, OriginY, OriginZ float32
	DeltaX, DeltaY, DeltaZ    float32
	MaxFraction               float32
	Flags                     uint32
}

// SegmentResult mirrors the fields of collision.Result a host process
// would read back across the hook boundary.
type SegmentResult struct {
	Hit      bool
	Fraction float32
	Surface  int32
}

// Hook is a single installed interception point: a named location the
// harness rewrote to jump into an EntryPoint. The record needed to undo
// the rewrite lives in the Journal, not in the Hook.
type Hook struct {
	Name  string
	Entry EntryPoint
}

// rewrite is one journalled, reversible setup action.
type rewrite struct {
	description string
	undo        func() error
}

// Journal accumulates rewrites as hooks are installed, in order, so
// Shutdown can undo them in reverse order — the one correctness
// requirement spec.md §6.4 places on the harness side of the contract.
type Journal struct {
	entries []rewrite
}

// Record appends a reversible action to the journal. Real harness
// implementations call this once per byte-level patch they make;
// StubRegistry.Install calls it once per registered hook.
func (j *Journal) Record(description string, undo func() error) {
	j.entries = append(j.entries, rewrite{description: description, undo: undo})
}

// Shutdown undoes every recorded rewrite in reverse installation order,
// collecting (not stopping on) individual undo failures.
func (j *Journal) Shutdown() error {
	var errs []error
	for i := len(j.entries) - 1; i >= 0; i-- {
		if err := j.entries[i].undo(); err != nil {
			errs = append(errs, fmt.Errorf("undo %q: %w", j.entries[i].description, err))
		}
	}
	j.entries = nil
	if len(errs) > 0 {
		return fmt.Errorf("%d hook(s) failed to undo: %v", len(errs), errs)
	}
	return nil
}

// StubRegistry is an in-process stand-in for the real code-patching
// harness: it records hooks in a map instead of rewriting machine code,
// which is enough to exercise the registration/undo contract in tests
// without the host-process scanning spec.md explicitly places out of
// scope.
type StubRegistry struct {
	Journal Journal
	hooks   map[string]Hook
}

// NewStubRegistry returns an empty registry.
func NewStubRegistry() *StubRegistry {
	return &StubRegistry{hooks: make(map[string]Hook)}
}

// Install registers entry under name, journalling its own removal.
func (r *StubRegistry) Install(name string, entry EntryPoint) {
	r.hooks[name] = Hook{Name: name, Entry: entry}
	r.Journal.Record(fmt.Sprintf("install hook %q", name), func() error {
		delete(r.hooks, name)
		return nil
	})
}

// Lookup returns the hook registered under name, if any.
func (r *StubRegistry) Lookup(name string) (Hook, bool) {
	h, ok := r.hooks[name]
	return h, ok
}

// Shutdown undoes every installed hook, in reverse order.
func (r *StubRegistry) Shutdown() error {
	return r.Journal.Shutdown()
}
