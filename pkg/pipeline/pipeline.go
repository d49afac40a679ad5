// Package pipeline coordinates the three worker pools that turn a list of
// genome files into a filled-in correlation matrix: load (counting),
// transform (stochastic signature) and compare. It is the Go translation
// of this project's original producer/consumer thread design, with the
// comparator's ordering bug fixed: a comparator never starts pairing
// genome i against j until j's signature is actually ready.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/protcorr/pkg/cmatrix"
	"github.com/andrew-torda/protcorr/pkg/corr"
	"github.com/andrew-torda/protcorr/pkg/counts"
	"github.com/andrew-torda/protcorr/pkg/queue"
	"github.com/andrew-torda/protcorr/pkg/signature"
)

// Stage records how far a genome slot has progressed.
type Stage int32

const (
	Unloaded Stage = iota
	Counted
	Signed
	Retired
)

// Progress receives trace calls as genomes load and as comparisons start
// and finish. It is optional; a nil Progress is never invoked.
type Progress interface {
	GenomeLoaded(index, total int, path string)
	ComparisonStarted(i, j int)
	ComparisonDone(i, j int, correlation float64)
}

// Config controls pool sizes and queue capacities. Zero values pick
// reasonable defaults.
type Config struct {
	Loaders       int // workers reading and counting genome files
	Transformers  int // workers computing stochastic signatures
	Comparators   int // workers filling in the correlation matrix
	QueueCapacity int // capacity shared by the three inter-stage queues
}

func (c Config) withDefaults() Config {
	if c.Loaders < 1 {
		c.Loaders = 4
	}
	if c.Transformers < 1 {
		c.Transformers = 4
	}
	if c.Comparators < 1 {
		c.Comparators = 4
	}
	if c.QueueCapacity < 1 {
		maxP := c.Loaders
		if c.Transformers > maxP {
			maxP = c.Transformers
		}
		c.QueueCapacity = maxP
	}
	return c
}

// Coordinator runs the three-stage pipeline over a fixed list of genome
// files, producing their pairwise correlation matrix.
type Coordinator struct {
	paths    []string
	cfg      Config
	progress Progress

	mu     sync.Mutex
	cond   *sync.Cond
	stage  []Stage
	rc     []*counts.RawCounts
	sigs   []*signature.Signature
	matrix *cmatrix.Matrix
}

// New builds a Coordinator for the given genome files.
func New(paths []string, cfg Config, progress Progress) *Coordinator {
	n := len(paths)
	c := &Coordinator{
		paths:    paths,
		cfg:      cfg.withDefaults(),
		progress: progress,
		stage:    make([]Stage, n),
		rc:       make([]*counts.RawCounts, n),
		sigs:     make([]*signature.Signature, n),
		matrix:   cmatrix.New(n),
	}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Run drives every genome through load, transform and compare, and
// returns the filled-in correlation matrix. It stops at the first error
// from any stage, cancelling the genomes still in flight.
func (c *Coordinator) Run(ctx context.Context) (*cmatrix.Matrix, error) {
	n := len(c.paths)
	if n == 0 {
		return c.matrix, nil
	}

	loadQ := queue.New[int](c.cfg.QueueCapacity)
	transformQ := queue.New[int](c.cfg.QueueCapacity)
	compareQ := queue.New[int](c.cfg.QueueCapacity)

	g, ctx := errgroup.WithContext(ctx)

	go func() {
		<-ctx.Done()
		loadQ.SetShutdown()
		transformQ.SetShutdown()
		compareQ.SetShutdown()
		c.mu.Lock()
		c.cond.Broadcast()
		c.mu.Unlock()
	}()

	g.Go(func() error {
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				loadQ.SetShutdown()
				return ctx.Err()
			default:
			}
			loadQ.Enqueue(i)
		}
		loadQ.SetShutdown()
		return nil
	})

	runPool(g, c.cfg.Loaders, loadQ, transformQ, func(i int) error {
		rc, err := counts.CountFile(c.paths[i])
		if err != nil {
			return fmt.Errorf("pipeline: loading %s: %w", c.paths[i], err)
		}
		c.mu.Lock()
		c.rc[i] = rc
		c.stage[i] = Counted
		c.mu.Unlock()
		if c.progress != nil {
			c.progress.GenomeLoaded(i, n, c.paths[i])
		}
		return nil
	})

	runPool(g, c.cfg.Transformers, transformQ, compareQ, func(i int) error {
		c.mu.Lock()
		rc := c.rc[i]
		c.mu.Unlock()

		sig := signature.Transform(rc)

		c.mu.Lock()
		c.sigs[i] = sig
		c.rc[i] = nil
		c.stage[i] = Signed
		c.cond.Broadcast()
		c.mu.Unlock()
		return nil
	})

	for w := 0; w < c.cfg.Comparators; w++ {
		g.Go(func() error {
			for {
				i, ok := compareQ.Dequeue()
				if !ok {
					return nil
				}
				if err := c.waitUntilReady(ctx, i); err != nil {
					return err
				}
				c.compareAgainstAllBelow(i)
				c.mu.Lock()
				c.stage[i] = Retired
				c.mu.Unlock()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c.matrix, nil
}

// runPool spawns workers draining in and handing off to out once work
// succeeds. out is shut down once every worker in the pool has drained in,
// or as soon as one worker's work fails.
func runPool(g *errgroup.Group, n int, in, out *queue.Queue[int], work func(int) error) {
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		g.Go(func() error {
			defer wg.Done()
			for {
				i, ok := in.Dequeue()
				if !ok {
					return nil
				}
				if err := work(i); err != nil {
					out.SetShutdown()
					return err
				}
				out.Enqueue(i)
			}
		})
	}
	g.Go(func() error {
		wg.Wait()
		out.SetShutdown()
		return nil
	})
}

// waitUntilReady blocks until every genome below i has reached Signed, or
// the context is cancelled.
func (c *Coordinator) waitUntilReady(ctx context.Context, i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for j := 0; j < i; j++ {
		for c.stage[j] < Signed {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.cond.Wait()
		}
	}
	return nil
}

// compareAgainstAllBelow fills in row i of the correlation matrix against
// every already-signed genome j < i.
func (c *Coordinator) compareAgainstAllBelow(i int) {
	c.mu.Lock()
	sigI := c.sigs[i]
	c.mu.Unlock()

	for j := 0; j < i; j++ {
		c.mu.Lock()
		sigJ := c.sigs[j]
		c.mu.Unlock()

		if c.progress != nil {
			c.progress.ComparisonStarted(i, j)
		}
		v := corr.Compare(sigI, sigJ)
		c.matrix.SetValue(i, j, v)
		if c.progress != nil {
			c.progress.ComparisonDone(i, j, v)
		}
	}
}
