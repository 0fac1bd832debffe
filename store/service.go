package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/geometry-fighter/engine"
)

// Name is the service name of the score store
const Name = "scores"

const (
	// pendingBuffer holds finished sessions waiting for the writer
	pendingBuffer = 16
	writeTimeout  = 2 * time.Second
)

// Service owns the score database and writes finished sessions off the tick goroutine
type Service struct {
	path string

	mu      sync.Mutex
	scores  *Scores
	pending chan engine.SessionResult
	done    chan struct{}
	best    int
	stopped bool
}

// NewService creates a score store service for the database at path
func NewService(path string) *Service {
	return &Service{
		path:    path,
		pending: make(chan engine.SessionResult, pendingBuffer),
	}
}

func (s *Service) Name() string           { return Name }
func (s *Service) Dependencies() []string { return nil }
func (s *Service) Optional() bool         { return true }

// Init opens the database and loads the best score
func (s *Service) Init() error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	scores, err := Open(ctx, s.path)
	if err != nil {
		return err
	}
	best, err := scores.Best(ctx)
	if err != nil {
		scores.Close()
		return err
	}
	s.scores, s.best = scores, best
	log.Printf("scores: %s opened, best %d", s.path, best)
	return nil
}

// Start launches the writer goroutine
func (s *Service) Start(context.Context) error {
	if s.scores == nil {
		return errors.New("scores not initialized")
	}
	s.done = make(chan struct{})
	go s.writer()
	return nil
}

// writer drains pending sessions until the channel closes
func (s *Service) writer() {
	defer close(s.done)
	for r := range s.pending {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := s.scores.Record(ctx, r); err != nil {
			log.Printf("scores: %v", err)
		}
		cancel()
	}
}

// BestScore returns the best score loaded at Init
func (s *Service) BestScore() int {
	return s.best
}

// Submit queues a finished session without blocking, a full queue drops it with a log line
func (s *Service) Submit(r engine.SessionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	select {
	case s.pending <- r:
	default:
		log.Printf("scores: queue full, session %s not recorded", r.ID)
	}
}

// Stop flushes queued sessions and closes the database, idempotent
func (s *Service) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	close(s.pending)
	s.mu.Unlock()

	if s.done != nil {
		<-s.done
	}
	if s.scores == nil {
		return nil
	}
	return s.scores.Close()
}
