package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leengari/listdiff/internal/aggregate"
	"github.com/leengari/listdiff/internal/column"
	"github.com/leengari/listdiff/internal/parser"
	"github.com/leengari/listdiff/internal/storage"
)

// SimilarityFunc computes the similarity score of two columns
type SimilarityFunc func(left, right column.Column) (uint64, error)

// Options configures an Engine
type Options struct {
	Parser     parser.Options
	Similarity SimilarityFunc // defaults to aggregate.Similarity
	Logger     *slog.Logger   // defaults to slog.Default()
}

// Report holds the results of one run
type Report struct {
	RunID      string        `json:"run_id"`
	Rows       int           `json:"rows"`
	Difference uint64        `json:"difference"`
	SimScore   uint64        `json:"sim_score"`
	Stats      parser.Stats  `json:"-"`
	Elapsed    time.Duration `json:"-"`
}

// Engine is the main entry point: it loads an input, parses it into two
// columns, sorts them and computes both statistics
type Engine struct {
	opts      Options
	logger    *slog.Logger
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance
func New(opts Options) *Engine {
	if opts.Similarity == nil {
		opts.Similarity = aggregate.Similarity
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		opts:      opts,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// Run loads the file at path and computes its report under a fresh run
func (e *Engine) Run(path string) (*Report, error) {
	return e.RunAs(NewRun(), path)
}

// RunAs is Run for a run the caller created, so its ID can be attached to
// the caller's logger before the pipeline starts
func (e *Engine) RunAs(run *Run, path string) (*Report, error) {

	e.notify(Event{Type: EventLoadStart, RunID: run.ID, Data: path})
	text, err := storage.LoadInput(path, e.logger)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventLoadEnd, RunID: run.ID, Data: len(text)})

	return e.execute(run, text)
}

// Execute computes the report for input text that is already in memory
func (e *Engine) Execute(text string) (*Report, error) {
	return e.execute(NewRun(), text)
}

func (e *Engine) execute(run *Run, text string) (*Report, error) {
	// 1. Parse
	e.notify(Event{Type: EventParseStart, RunID: run.ID})
	res, err := parser.Parse(text, e.opts.Parser)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	e.notify(Event{Type: EventParseEnd, RunID: run.ID, Data: res.Stats})

	if res.Stats.Skipped > 0 {
		e.logger.Warn("malformed lines skipped", "count", res.Stats.Skipped)
	}
	if res.Stats.Defaulted > 0 {
		e.logger.Info("invalid numbers read as 0", "count", res.Stats.Defaulted)
	}

	pair := res.Pair
	if err := pair.Validate(); err != nil {
		return nil, err
	}

	// 2. Sort
	pair.Sort()
	e.notify(Event{Type: EventSortEnd, RunID: run.ID, Data: pair.Rows()})

	// 3. Aggregate
	difference, err := aggregate.SortedDistance(pair.Left, pair.Right)
	if err != nil {
		return nil, fmt.Errorf("difference: %w", err)
	}
	e.notify(Event{Type: EventDistanceEnd, RunID: run.ID, Data: difference})

	simScore, err := e.opts.Similarity(pair.Left, pair.Right)
	if err != nil {
		return nil, fmt.Errorf("sim_score: %w", err)
	}
	e.notify(Event{Type: EventSimilarityEnd, RunID: run.ID, Data: simScore})

	return &Report{
		RunID:      run.ID,
		Rows:       pair.Rows(),
		Difference: difference,
		SimScore:   simScore,
		Stats:      res.Stats,
		Elapsed:    run.Elapsed(),
	}, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
