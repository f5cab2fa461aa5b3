package viewer

import (
	"context"
	"sync"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
)

// LoadStatus is the state of the catalog fetch
type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Lister fetches the catalog
type Lister interface {
	ListModels(ctx context.Context) ([]*model.ModelRecord, error)
}

type fetch struct {
	done    <-chan error
	records []*model.ModelRecord
}

// Selection holds the catalog list and the focused record. It is owned by
// the frame goroutine; only the fetch runs elsewhere, and its result is
// applied by Poll or Wait.
type Selection struct {
	source Lister

	status   LoadStatus
	records  []*model.ModelRecord
	err      error
	started  bool
	inflight *fetch

	focused *model.ModelRecord

	mu        sync.Mutex
	listeners map[int]func(*model.ModelRecord)
	nextID    int
}

func NewSelection(source Lister) *Selection {
	return &Selection{
		source:    source,
		status:    LoadPending,
		listeners: make(map[int]func(*model.ModelRecord)),
	}
}

// Load starts the catalog fetch. Later calls are no-ops; use Retry after a
// failure.
func (s *Selection) Load(ctx context.Context) {
	if s.started {
		return
	}
	s.started = true
	s.startFetch(ctx)
}

// Retry re-issues the fetch after a failure. It reports whether a fetch
// was started.
func (s *Selection) Retry(ctx context.Context) bool {
	if s.status != LoadFailed || s.inflight != nil {
		return false
	}
	s.startFetch(ctx)
	return true
}

func (s *Selection) startFetch(ctx context.Context) {
	s.status = LoadPending
	s.err = nil

	f := &fetch{}
	source := s.source
	f.done = async.Dispatch(ctx, func(ctx context.Context) error {
		if source == nil {
			return goerr.New("no catalog source configured")
		}
		records, err := source.ListModels(ctx)
		if err != nil {
			return err
		}
		f.records = records
		return nil
	})
	s.inflight = f
}

// Poll applies a finished fetch without blocking. It reports whether the
// load status changed.
func (s *Selection) Poll() bool {
	if s.inflight == nil {
		return false
	}
	select {
	case err := <-s.inflight.done:
		s.apply(err)
		return true
	default:
		return false
	}
}

// Wait blocks until the in-flight fetch finishes and applies it
func (s *Selection) Wait(ctx context.Context) error {
	if s.inflight == nil {
		return s.err
	}
	select {
	case err := <-s.inflight.done:
		s.apply(err)
		return s.err
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "catalog fetch did not finish")
	}
}

func (s *Selection) apply(err error) {
	f := s.inflight
	s.inflight = nil
	if err != nil {
		s.status = LoadFailed
		s.err = err
		return
	}
	s.status = LoadReady
	s.records = f.records
	if s.records == nil {
		s.records = []*model.ModelRecord{}
	}
}

func (s *Selection) Status() LoadStatus { return s.status }

// Err returns the last fetch failure, nil unless the status is LoadFailed
func (s *Selection) Err() error { return s.err }

// Records returns the fetched catalog. It is empty until the status is LoadReady.
func (s *Selection) Records() []*model.ModelRecord {
	out := make([]*model.ModelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Focused returns the selected record, nil while idle
func (s *Selection) Focused() *model.ModelRecord {
	return s.focused
}

// Select focuses record and notifies subscribers synchronously. A nil
// record is ignored; there is no transition back to idle.
func (s *Selection) Select(record *model.ModelRecord) {
	if record == nil {
		return
	}
	s.focused = record

	s.mu.Lock()
	listeners := make([]func(*model.ModelRecord), 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(record)
	}
}

// Subscribe registers fn for selection changes and returns a func that
// removes it.
func (s *Selection) Subscribe(fn func(*model.ModelRecord)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}
