package harness

import (
	"errors"
	"testing"
)

func TestStubRegistryInstallAndLookup(t *testing.T) {
	r := NewStubRegistry()
	r.Install("test_segment", func(p SegmentParams) SegmentResult {
		return SegmentResult{Hit: true, Fraction: p.MaxFraction}
	})

	hook, ok := r.Lookup("test_segment")
	if !ok {
		t.Fatal("Lookup should find the installed hook")
	}
	got := hook.Entry(SegmentParams{MaxFraction: 0.5})
	if !got.Hit || got.Fraction != 0.5 {
		t.Errorf("hook result = %+v, want Hit with Fraction 0.5", got)
	}
}

func TestStubRegistryLookupMissingHook(t *testing.T) {
	r := NewStubRegistry()
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup should report false for a hook that was never installed")
	}
}

func TestStubRegistryShutdownUndoesHooks(t *testing.T) {
	r := NewStubRegistry()
	r.Install("a", func(SegmentParams) SegmentResult { return SegmentResult{} })
	r.Install("b", func(SegmentParams) SegmentResult { return SegmentResult{} })

	if err := r.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, ok := r.Lookup("a"); ok {
		t.Error("Shutdown should have undone hook 'a'")
	}
	if _, ok := r.Lookup("b"); ok {
		t.Error("Shutdown should have undone hook 'b'")
	}
}

func TestJournalShutdownRunsInReverseOrder(t *testing.T) {
	var order []int
	var j Journal
	j.Record("first", func() error { order = append(order, 1); return nil })
	j.Record("second", func() error { order = append(order, 2); return nil })

	if err := j.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("undo order = %v, want [2 1] (reverse of installation)", order)
	}
}

func TestJournalShutdownCollectsErrors(t *testing.T) {
	var j Journal
	j.Record("bad", func() error { return errors.New("boom") })

	if err := j.Shutdown(); err == nil {
		t.Error("Shutdown should report an undo failure")
	}
}
