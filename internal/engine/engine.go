package engine

import (
	"github.com/rs/zerolog"
)

// Engine owns one transposition table and fills it by exhaustive negamax.
// An Engine is not safe for concurrent use; SolveParallel gives each worker
// its own Engine and merges the tables afterwards.
type Engine struct {
	table *Table

	nodes int64
	hits  int64

	log     zerolog.Logger
	metrics *Metrics
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		table: NewTable(),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table exposes the table for reporting. Callers must not store into it.
func (e *Engine) Table() *Table { return e.table }

type Stats struct {
	Nodes     int64 `json:"nodes"`
	Hits      int64 `json:"hits"`
	Positions int   `json:"positions"`
}

func (e *Engine) Stats() Stats {
	return Stats{
		Nodes:     e.nodes,
		Hits:      e.hits,
		Positions: e.table.Known(),
	}
}

// local builds a worker engine sharing e's logger but nothing else.
func (e *Engine) local() *Engine {
	return &Engine{
		table: NewTable(),
		log:   e.log,
	}
}
