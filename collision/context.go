package collision

import (
	"github.com/ashfallgames/collisionbsp/bsp"
	"github.com/ashfallgames/collisionbsp/geom"
)

// stackCap is the fixed capacity of the diagnostic leaf/node stacks
// (spec.md §3, §5): no heap allocation in the hot path, saturating
// instead of growing.
const stackCap = 256

// LeafStack is the capped, saturating collection of interior leaves a
// query crossed, in visitation order. Once full, further pushes overwrite
// the last slot rather than growing (spec.md §4.8).
type LeafStack struct {
	Stack [stackCap]int32
	Count int
}

func (s *LeafStack) push(leaf int32) {
	if s.Count < stackCap {
		s.Stack[s.Count] = leaf
		s.Count++
		return
	}
	s.Stack[stackCap-1] = leaf
}

func (s *LeafStack) reset() { s.Count = 0 }

// Visited returns the leaves pushed so far, in order.
func (s *LeafStack) Visited() []int32 { return s.Stack[:s.Count] }

// Result is the outcome of a segment test: whether a surface was hit,
// and if so where and on which surface, plus the diagnostic leaf trail.
type Result struct {
	Hit       bool
	Fraction  float32
	LastSplit int32 // index into bsp.Planes3D; -1 if no split was ever crossed
	Surface   int32
	Leaves    LeafStack
}

func (r *Result) reset(maxFraction float32) {
	*r = Result{Fraction: maxFraction, LastSplit: -1, Surface: -1}
}

// nodeStack is a fixed-capacity ancestor-path stack used by the leak
// recovery mitigations (spec.md §4.6): the plain "current path" stack and
// the "path to the deepest interior-leaf ancestor" stack are both capped
// and saturating, same rule as LeafStack.
type nodeStack struct {
	nodes [stackCap]int32
	count int
}

func (s *nodeStack) push(node int32) {
	if s.count < stackCap {
		s.nodes[s.count] = node
		s.count++
		return
	}
	s.nodes[stackCap-1] = node
}

func (s *nodeStack) pop() {
	if s.count > 0 {
		s.count--
	}
}

func (s *nodeStack) items() []int32 { return s.nodes[:s.count] }

// pendingHit is the phantom-BSP mitigation's one speculative result: a
// surface candidate kept aside until a later partition either confirms
// (next solid hit) or refutes (leak) it (spec.md §4.6).
type pendingHit struct {
	fraction float32
	plane    int32
	surface  int32
}

// queryContext is the mutable, per-call state a segment test threads
// through its recursion. It never outlives the call that created it
// (spec.md §3 "Lifetime").
type queryContext struct {
	bsp        *bsp.CollisionBSP
	breakable  BreakableSet
	flags      Flags
	opts       Options
	origin     geom.Vector3
	delta      geom.Vector3
	result     *Result

	// Immediate history, updated once per leaf transition (spec.md §4.7).
	leaf     int32
	leafType bsp.LeafKind
	plane    int32

	// Defect-mitigation state (spec.md §4.6).
	pending              *pendingHit
	justEncounteredLeak  bool
	nodePath             nodeStack // current path from root to here
	interiorLeafNodePath nodeStack // path from root to the deepest interior-leaf ancestor seen

	// Orientation-probe support (spec.md §4.6 Auxiliary). ignorePlane < 0
	// means "ignore nothing".
	ignorePlane int32
}

func newQueryContext(b *bsp.CollisionBSP, breakable BreakableSet, origin, delta geom.Vector3, flags Flags, opts Options, result *Result) *queryContext {
	return &queryContext{
		bsp:         b,
		breakable:   breakable,
		flags:       flags.normalized(),
		opts:        opts,
		origin:      origin,
		delta:       delta,
		result:      result,
		leaf:        -1,
		leafType:    bsp.LeafNone,
		plane:       -1,
		ignorePlane: -1,
	}
}
