package collision

// Flags controls which surface orientations and categories a segment test
// records (spec.md §6.2). The bit layout mirrors the original engine's
// mask so that higher layers (object/media/structure/vehicle collision,
// out of scope for this core) can share the same wire representation.
type Flags uint32

const (
	FlagFrontFacingSurfaces Flags = 1 << 0
	FlagBackFacingSurfaces  Flags = 1 << 1

	FlagIgnoreTwoSidedSurfaces Flags = 1 << 2
	FlagIgnoreInvisibleSurfaces Flags = 1 << 3
	FlagIgnoreBreakableSurfaces Flags = 1 << 4

	// bspBits are the bits this core actually interprets.
	bspBits = FlagFrontFacingSurfaces | FlagBackFacingSurfaces |
		FlagIgnoreTwoSidedSurfaces | FlagIgnoreInvisibleSurfaces | FlagIgnoreBreakableSurfaces

	FlagStructure       Flags = 1 << 5
	FlagMedia           Flags = 1 << 6
	FlagObjects         Flags = 1 << 7
	FlagAllCategories         = FlagStructure | FlagMedia | FlagObjects

	FlagBipeds         Flags = 1 << 8
	FlagVehicles       Flags = 1 << 9
	FlagWeapons        Flags = 1 << 10
	FlagEquipment      Flags = 1 << 11
	FlagGarbage        Flags = 1 << 12
	FlagProjectiles    Flags = 1 << 13
	FlagScenery        Flags = 1 << 14
	FlagMachines       Flags = 1 << 15
	FlagControls       Flags = 1 << 16
	FlagLightFixtures  Flags = 1 << 17
	FlagPlaceholders   Flags = 1 << 18
	FlagSoundScenery   Flags = 1 << 19

	// The following three are parsed for wire compatibility but are never
	// read anywhere in this core — they belong to the object-collision
	// layer outside this scope (spec.md §9 Open Questions).
	FlagTryToKeepLocationValid Flags = 1 << 20
	FlagSkipPassthroughBipeds  Flags = 1 << 21
	FlagUseVehiclePhysics      Flags = 1 << 22
)

// normalized applies the "if both front/back are clear, default both set"
// precondition from spec.md §6.2.
func (f Flags) normalized() Flags {
	if f&(FlagFrontFacingSurfaces|FlagBackFacingSurfaces) == 0 {
		f |= FlagFrontFacingSurfaces | FlagBackFacingSurfaces
	}
	return f
}

// ParseFlags decodes a raw wire-format flag mask (the same bit layout the
// original object/media/structure collision callers pack) into Flags. The
// upper object-collision bits parse through unchanged for wire fidelity,
// even though this core never reads them.
func ParseFlags(raw uint32) Flags { return Flags(raw) }

func (f Flags) wantsFront() bool           { return f&FlagFrontFacingSurfaces != 0 }
func (f Flags) wantsBack() bool            { return f&FlagBackFacingSurfaces != 0 }
func (f Flags) ignoresTwoSided() bool      { return f&FlagIgnoreTwoSidedSurfaces != 0 }
func (f Flags) ignoresInvisible() bool     { return f&FlagIgnoreInvisibleSurfaces != 0 }
func (f Flags) ignoresBreakable() bool     { return f&FlagIgnoreBreakableSurfaces != 0 }

// Options are the mitigation toggles the original source kept as
// process-wide globals; this module threads them explicitly through the
// context instead, per spec.md §9's Design Notes, so tests can flip them
// deterministically without cross-test interference.
type Options struct {
	MitigatePhantomBSP bool
	MitigateBSPLeaks   bool
}

// DefaultOptions enables both mitigations, matching the original's default.
func DefaultOptions() Options {
	return Options{MitigatePhantomBSP: true, MitigateBSPLeaks: true}
}

// BreakableSet is the per-query snapshot of which breakable surfaces are
// still intact: bit set ⇒ intact (spec.md §3, §6.3).
type BreakableSet []uint64

// NewBreakableSet returns a set with n bits, all initially intact.
func NewBreakableSet(n int) BreakableSet {
	words := (n + 63) / 64
	set := make(BreakableSet, words)
	for i := range set {
		set[i] = ^uint64(0)
	}
	return set
}

// Intact reports whether the breakable surface at index is still intact.
// An index outside the set (including the "not breakable" sentinel -1,
// carried as a negative int8 in bsp.Surface) is treated as intact: only a
// surface actually flagged breakable consults this set at all.
func (s BreakableSet) Intact(index int8) bool {
	if index < 0 {
		return true
	}
	word := int(index) / 64
	if word >= len(s) {
		return true
	}
	return s[word]&(1<<(uint(index)%64)) != 0
}

// Break clears the intact bit for index.
func (s BreakableSet) Break(index int8) {
	if index < 0 {
		return
	}
	word := int(index) / 64
	if word >= len(s) {
		return
	}
	s[word] &^= 1 << (uint(index) % 64)
}
