package ecs

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// executionBlock groups writing systems whose combined read/write masks
// overlap; block 0 instead holds every read-only system. Everything inside
// one block runs sequentially; blocks run concurrently with each other.
type executionBlock struct {
	mask    Mask // union of every member's Writes() ∪ Reads()
	systems []System
}

// Scheduler orders registered systems into execution blocks and drives
// them once per Exec/ExecSequential call.
type Scheduler struct {
	w       *World
	blocks  []*executionBlock
	cfg     *schedulerConfig
}

// NewScheduler builds a standalone Scheduler bound to w. Most callers use
// w.Scheduler() instead; this is for the rarer case of running a second,
// independently-configured schedule against the same world.
func NewScheduler(w *World, opts ...SchedulerOption) *Scheduler {
	return newScheduler(w, opts...)
}

// newScheduler builds an empty Scheduler bound to w. Block 0 is reserved
// for systems that only read — they never conflict with each other and
// are fused into a single block up front.
func newScheduler(w *World, opts ...SchedulerOption) *Scheduler {
	cfg := defaultSchedulerConfig(w)
	for _, opt := range opts {
		opt(cfg)
	}
	s := &Scheduler{w: w, cfg: cfg}
	s.blocks = append(s.blocks, &executionBlock{})
	return s
}

// Insert registers sys with the scheduler, placing it in the read-only
// block 0 if it never writes, and otherwise fusing it into whichever
// existing block(s) its combined mask intersects, or starting a new block
// if none do.
func (s *Scheduler) Insert(sys System) {
	writes := sys.Writes()
	reads := sys.Reads()
	combined := writes.union(reads)

	if writes.empty() {
		s.blocks[0].systems = append(s.blocks[0].systems, sys)
		s.blocks[0].mask = s.blocks[0].mask.union(combined)
		return
	}

	var matches []int
	for i := 1; i < len(s.blocks); i++ {
		if s.blocks[i].mask.intersects(combined) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		s.blocks = append(s.blocks, &executionBlock{mask: combined, systems: []System{sys}})
	case 1:
		b := s.blocks[matches[0]]
		b.systems = append(b.systems, sys)
		b.mask = b.mask.union(combined)
	default:
		// Multiple existing blocks intersect; fuse them all into the
		// first match, preserving each block's insertion order, and drop
		// the rest. sys is appended last, after every fused system.
		target := s.blocks[matches[0]]
		for i := 1; i < len(matches); i++ {
			idx := matches[i]
			target.systems = append(target.systems, s.blocks[idx].systems...)
			target.mask = target.mask.union(s.blocks[idx].mask)
		}
		for i := len(matches) - 1; i >= 1; i-- {
			idx := matches[i]
			s.blocks = append(s.blocks[:idx], s.blocks[idx+1:]...)
		}
		target.systems = append(target.systems, sys)
		target.mask = target.mask.union(combined)
	}
}

// SystemCount returns the total number of systems registered across every
// block.
func (s *Scheduler) SystemCount() int {
	n := 0
	for _, b := range s.blocks {
		n += len(b.systems)
	}
	return n
}

// Exec runs every block once. Blocks run concurrently with each other
// (their write sets are disjoint by construction); systems within a block
// run sequentially in insertion order.
func (s *Scheduler) Exec() error {
	start := time.Now()
	defer func() { s.w.metrics.tickDuration.Observe(time.Since(start).Seconds()) }()

	if !s.cfg.parallel {
		return s.execSequentialAllBlocks()
	}

	var g errgroup.Group
	for _, b := range s.blocks {
		b := b
		g.Go(func() error {
			for _, sys := range b.systems {
				sys.Update(s.w)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cfg.logger.Error("scheduler exec failed", zap.Error(err))
		return err
	}
	return nil
}

// ExecSequential runs every block and every system within it strictly in
// insertion order on the calling goroutine, regardless of the scheduler's
// configured parallelism. Useful for deterministic tests.
func (s *Scheduler) ExecSequential() error {
	start := time.Now()
	defer func() { s.w.metrics.tickDuration.Observe(time.Since(start).Seconds()) }()
	return s.execSequentialAllBlocks()
}

func (s *Scheduler) execSequentialAllBlocks() error {
	for _, b := range s.blocks {
		for _, sys := range b.systems {
			sys.Update(s.w)
		}
	}
	return nil
}
