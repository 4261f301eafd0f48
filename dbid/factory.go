package dbid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/knnkit/internal/resource"
)

// maxSlots bounds the slot table so that every index fits in a uint32.
const maxSlots = math.MaxUint32

// span is a run of free consecutive slots.
type span struct {
	base uint32
	n    uint32
}

// Factory manufactures ids, id collections and pairs.
//
// A Factory is a generation-checked slot arena. Deallocation marks a slot free
// and bumps its generation; an id carrying an older generation is stale and is
// rejected with ErrInvalidState instead of aliasing the slot's next occupant.
//
// Create one Factory per dataset scope and pass it by reference. Allocation
// and deallocation are safe for concurrent use.
type Factory struct {
	mu    sync.Mutex
	gens  []uint32        // current generation per slot
	live  *roaring.Bitmap // allocated slots
	free  []uint32        // freed single slots (LIFO)
	spans []span          // freed ranges (first fit)

	budget *resource.Controller
	logger *slog.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger for allocation events.
func WithLogger(l *slog.Logger) FactoryOption {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithResourceController charges every live id against rc's id budget.
func WithResourceController(rc *resource.Controller) FactoryOption {
	return func(f *Factory) {
		f.budget = rc
	}
}

// WithMaxIDs limits the number of simultaneously live ids.
// If n <= 0, the factory is unlimited.
func WithMaxIDs(n int64) FactoryOption {
	return func(f *Factory) {
		f.budget = resource.NewController(resource.Config{MaxIDs: n})
	}
}

// NewFactory creates an empty factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		live:   roaring.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) acquire(n int) error {
	if err := f.budget.AcquireIDs(int64(n)); err != nil {
		if errors.Is(err, resource.ErrBudgetExceeded) {
			return fmt.Errorf("%w: %d ids requested, %d of %d live: %w",
				ErrCapacityExceeded, n, f.budget.LiveIDs(), f.budget.MaxIDs(), err)
		}
		return err
	}
	return nil
}

// NewSingle allocates one fresh id.
func (f *Factory) NewSingle() (ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.acquire(1); err != nil {
		return ObjectID{}, err
	}

	var idx uint32
	switch {
	case len(f.free) > 0:
		idx = f.free[len(f.free)-1]
		f.free = f.free[:len(f.free)-1]
	case len(f.spans) > 0:
		s := &f.spans[len(f.spans)-1]
		idx = s.base
		s.base++
		s.n--
		if s.n == 0 {
			f.spans = f.spans[:len(f.spans)-1]
		}
	default:
		if len(f.gens) >= maxSlots {
			f.budget.ReleaseIDs(1)
			return ObjectID{}, fmt.Errorf("%w: slot table full", ErrCapacityExceeded)
		}
		idx = uint32(len(f.gens))
		f.gens = append(f.gens, 1)
	}

	f.live.Add(idx)
	return ObjectID{index: idx, gen: f.gens[idx]}, nil
}

// NewRange allocates n consecutive ids in one step. NewRange(0) returns Empty.
func (f *Factory) NewRange(n int) (Range, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: range size %d", ErrInvalidArgument, n)
	}
	if n == 0 {
		return Empty, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.acquire(n); err != nil {
		return nil, err
	}

	base, ok := f.takeSpan(n)
	if !ok {
		if uint64(len(f.gens))+uint64(n) > maxSlots {
			f.budget.ReleaseIDs(int64(n))
			return nil, fmt.Errorf("%w: slot table full", ErrCapacityExceeded)
		}
		base = uint32(len(f.gens))
		for range n {
			f.gens = append(f.gens, 1)
		}
	}

	// All members of a range share one generation. Raising every slot to the
	// maximum keeps each slot's generation strictly above any stale id.
	gen := uint32(1)
	for _, g := range f.gens[base : base+uint32(n)] {
		gen = max(gen, g)
	}
	for i := base; i < base+uint32(n); i++ {
		f.gens[i] = gen
	}

	f.live.AddRange(uint64(base), uint64(base)+uint64(n))
	f.logger.Debug("allocated id range", "base", base, "n", n, "generation", gen, "reused", ok)

	return rangeIDs{base: base, n: n, gen: gen}, nil
}

// takeSpan carves n slots from the first free span that fits.
func (f *Factory) takeSpan(n int) (uint32, bool) {
	for i := range f.spans {
		s := &f.spans[i]
		if int(s.n) < n {
			continue
		}
		base := s.base
		s.base += uint32(n)
		s.n -= uint32(n)
		if s.n == 0 {
			f.spans = append(f.spans[:i], f.spans[i+1:]...)
		}
		return base, true
	}
	return 0, false
}

// checkLive reports ErrInvalidState unless id is currently allocated.
// Callers must hold f.mu.
func (f *Factory) checkLive(id ObjectID) error {
	if !id.IsValid() || int(id.index) >= len(f.gens) {
		return fmt.Errorf("%w: %v was never allocated", ErrInvalidState, id)
	}
	if !f.live.Contains(id.index) || f.gens[id.index] != id.gen {
		return fmt.Errorf("%w: %v is stale (slot generation %d)", ErrInvalidState, id, f.gens[id.index])
	}
	return nil
}

func (f *Factory) retire(idx uint32) {
	f.gens[idx]++
	if f.gens[idx] == 0 {
		f.gens[idx] = 1
	}
}

// DeallocateSingle returns id to the pool. Deallocating a stale, foreign or
// already freed id fails with ErrInvalidState.
func (f *Factory) DeallocateSingle(ref IDRef) error {
	id := ref.ID()

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkLive(id); err != nil {
		return err
	}

	f.live.Remove(id.index)
	f.retire(id.index)
	f.free = append(f.free, id.index)
	f.budget.ReleaseIDs(1)
	return nil
}

// DeallocateRange returns every id of r to the pool. The range must have been
// produced by NewRange and be entirely live; otherwise nothing is freed.
func (f *Factory) DeallocateRange(r Range) error {
	var rg rangeIDs
	switch v := r.(type) {
	case emptyIDs:
		return nil
	case rangeIDs:
		rg = v
	default:
		return fmt.Errorf("%w: %T is not a factory range", ErrInvalidArgument, r)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range rg.n {
		if err := f.checkLive(rg.at(i)); err != nil {
			return err
		}
	}

	end := rg.base + uint32(rg.n)
	f.live.RemoveRange(uint64(rg.base), uint64(end))
	for i := rg.base; i < end; i++ {
		f.retire(i)
	}
	f.spans = append(f.spans, span{base: rg.base, n: uint32(rg.n)})
	f.budget.ReleaseIDs(int64(rg.n))

	f.logger.Debug("released id range", "base", rg.base, "n", rg.n)
	return nil
}

// IsLive reports whether ref is currently allocated by this factory.
func (f *Factory) IsLive(ref IDRef) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkLive(ref.ID()) == nil
}

// Live returns the number of allocated ids.
func (f *Factory) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.live.GetCardinality())
}

// Compare orders ids. The order is total and stable for the factory's lifetime.
func (f *Factory) Compare(a, b IDRef) int {
	return compareIDs(a.ID(), b.ID())
}

// Equal reports whether a and b denote the same record.
func (f *Factory) Equal(a, b IDRef) bool {
	return a.ID() == b.ID()
}

// NewArray creates an empty modifiable array with capacity hint.
func (f *Factory) NewArray(hint int) ArrayModifiableIDs {
	return newArray(hint)
}

// NewArrayFrom creates a modifiable array holding the ids of src.
func (f *Factory) NewArrayFrom(src IDs) ArrayModifiableIDs {
	return newArrayFrom(src)
}

// NewSet creates an empty modifiable set. The size hint is ignored; the
// bitmap grows on demand.
func (f *Factory) NewSet(_ int) HashSetModifiableIDs {
	return newHashSet()
}

// NewSetFrom creates a modifiable set holding the distinct ids of src.
func (f *Factory) NewSetFrom(src IDs) HashSetModifiableIDs {
	return newHashSetFrom(src)
}

// NewStatic returns an immutable snapshot of src.
func (f *Factory) NewStatic(src IDs) StaticIDs {
	return newStatic(src)
}

// NewPair creates an id pair.
func (f *Factory) NewPair(first, second IDRef) Pair {
	return Pair{First: first.ID(), Second: second.ID()}
}
