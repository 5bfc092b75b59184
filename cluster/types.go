// Package cluster defines tunable options and sentinel errors for connected
// component counting over an occupancy Mask.
package cluster

import (
	"errors"
	"fmt"

	"github.com/nightscan/starfield/grid"
)

// Sentinel errors for cluster analysis.
var (
	// ErrNilMask is returned if a nil mask pointer is passed.
	ErrNilMask = errors.New("cluster: mask is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cluster: invalid option supplied")
)

// Option configures cluster analysis via functional arguments.
// If an Option is invalid (e.g. unknown connectivity), it is recorded
// internally and surfaced as ErrOptionViolation when the analysis runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize the scan.
type Options struct {
	// Conn chooses 4- or 8-directional adjacency.
	Conn grid.Connectivity

	// OnCluster is called once per discovered cluster with the coordinates
	// of the cell where its traversal started.
	OnCluster func(x, y int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with star-counting defaults:
//   - Conn8 adjacency (diagonal neighbors connect)
//   - no-op OnCluster hook.
func DefaultOptions() Options {
	return Options{
		Conn:      grid.Conn8,
		OnCluster: func(int, int) {},
		err:       nil,
	}
}

// WithConnectivity selects the adjacency mode. An unknown mode is surfaced
// as ErrOptionViolation.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: unknown connectivity (%d)", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithOnCluster registers a callback fired once per discovered cluster.
func WithOnCluster(fn func(x, y int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCluster = fn
		}
	}
}
