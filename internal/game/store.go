package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// saveTimeout bounds a single snapshot write.
const saveTimeout = 5 * time.Second

// Persister stores the opaque game snapshot between sessions.
type Persister interface {
	// Load returns the latest snapshot, or nil if none exists.
	Load(ctx context.Context) ([]byte, error)

	// Save stores a new snapshot.
	Save(ctx context.Context, snapshot []byte) error
}

// Store owns the live game State. All mutations go through its named
// operations; each one is applied atomically and its snapshot handed to a
// background writer. Persistence failures are logged and never change the
// in-memory state.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	logger    zerolog.Logger

	// pending holds at most one unwritten snapshot; a newer one replaces it.
	pending chan []byte
	done    chan struct{}
	closed  bool
}

// NewStore creates a store holding initial. persister may be nil. Call Close
// to flush the last snapshot.
func NewStore(initial State, persister Persister, logger zerolog.Logger) *Store {
	s := &Store{
		state:     initial.normalize(),
		persister: persister,
		logger:    logger,
		done:      make(chan struct{}),
	}
	if persister == nil {
		close(s.done)
		return s
	}
	s.pending = make(chan []byte, 1)
	go s.writeLoop()
	return s
}

// Close stops the writer after the pending snapshot is saved.
func (s *Store) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		if s.pending != nil {
			close(s.pending)
		}
	}
	s.mu.Unlock()
	<-s.done
}

// Load restores the store from persister, falling back to NewState when no
// snapshot exists or it cannot be read.
func Load(ctx context.Context, persister Persister, logger zerolog.Logger) *Store {
	st := NewState()
	if persister != nil {
		raw, err := persister.Load(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("load game snapshot; starting fresh")
		} else if restored, err := Restore(raw); err != nil {
			logger.Warn().Err(err).Msg("restore game snapshot; starting fresh")
		} else {
			st = restored
		}
	}
	return NewStore(st, persister, logger)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) SelectCharacter(id string) {
	s.apply("select_character", func(st State) State { return st.SelectCharacter(id) })
}

func (s *Store) ClearCharacter() {
	s.apply("clear_character", State.ClearCharacter)
}

func (s *Store) ResetForNewTest() {
	s.apply("reset_for_new_test", State.ResetForNewTest)
}

func (s *Store) ApplyAnswerEffect(correct bool, progressGain float64) {
	s.apply("answer_effect", func(st State) State { return st.ApplyAnswerEffect(correct, progressGain) })
}

// RecordPerfectRun counts a perfect test and reports whether the character
// leveled up as a result.
func (s *Store) RecordPerfectRun() bool {
	var before, after int
	s.apply("perfect_run", func(st State) State {
		before = st.CharacterLevel
		st = st.RecordPerfectRun()
		after = st.CharacterLevel
		return st
	})
	return after > before
}

func (s *Store) ApplyPenaltyAndReset() {
	s.apply("penalty_reset", State.ApplyPenaltyAndReset)
}

func (s *Store) StartChapter(index int) {
	s.apply("start_chapter", func(st State) State { return st.StartChapter(index) })
}

func (s *Store) AdvanceStory() {
	s.apply("advance_story", State.AdvanceStory)
}

// apply runs fn and queues the result under the lock, so snapshots are
// written in mutation order.
func (s *Store) apply(op string, fn func(State) State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = fn(s.state)

	s.logger.Debug().
		Str("op", op).
		Int("hp", s.state.CurrentHP).
		Float64("progress", s.state.CaseProgress).
		Int("level", s.state.CharacterLevel).
		Msg("game state updated")

	s.persist(s.state)
}

// persist queues st for the writer. Called with mu held.
func (s *Store) persist(st State) {
	if s.persister == nil {
		return
	}
	if s.closed {
		s.logger.Warn().Msg("game store closed; snapshot not saved")
		return
	}
	raw, err := Marshal(st)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode game snapshot")
		return
	}

	select {
	case <-s.pending:
	default:
	}
	s.pending <- raw
}

func (s *Store) writeLoop() {
	defer close(s.done)
	for raw := range s.pending {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := s.persister.Save(ctx, raw); err != nil {
			s.logger.Error().Err(err).Msg("save game snapshot")
		}
		cancel()
	}
}
