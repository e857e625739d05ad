package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/telemetry/logger"
)

// LevelSyncer pushes a new level and points total to the service.
type LevelSyncer interface {
	SyncLevel(ctx context.Context, level, points int) error
}

// SyncObserver is told the outcome of every background level sync.
type SyncObserver interface {
	ObserveLevelSync(err error)
}

// Store holds at most one Account and one Session.
//
// It is safe for concurrent use. Accessors return copies.
type Store struct {
	mu           sync.RWMutex
	account      *domain.Account
	session      *domain.Session
	shouldReload bool

	syncer   LevelSyncer
	observer SyncObserver
	logger   logger.Logger

	// pending is the newest total not yet handed to the syncer. At most
	// one sync worker runs at a time.
	pending *levelSync
	syncing bool
	syncs   sync.WaitGroup
}

type levelSync struct {
	ctx           context.Context
	level, points int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLevelSyncer sets the syncer AddPoints notifies.
func WithLevelSyncer(s LevelSyncer) StoreOption {
	return func(st *Store) { st.syncer = s }
}

// WithSyncObserver sets the observer of level sync outcomes.
func WithSyncObserver(o SyncObserver) StoreOption {
	return func(st *Store) { st.observer = o }
}

// WithStoreLogger sets the logger.
func WithStoreLogger(l logger.Logger) StoreOption {
	return func(st *Store) { st.logger = l }
}

// NewStore creates an empty Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}
	return s
}

// SetAccount replaces the account. nil clears it.
func (s *Store) SetAccount(a *domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == nil {
		s.account = nil
		return
	}
	cp := *a
	s.account = &cp
}

// Account returns the current account.
func (s *Store) Account() (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.account == nil {
		return domain.Account{}, false
	}
	return *s.account, true
}

// SetSession replaces the session. nil clears it.
func (s *Store) SetSession(sess *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess == nil {
		s.session = nil
		return
	}
	cp := *sess
	s.session = &cp
}

// Session returns the current session.
func (s *Store) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// Clear drops both the account and the session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.session = nil
}

// ShouldReload reports whether the account changed since MarkReloaded.
func (s *Store) ShouldReload() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shouldReload
}

// MarkReloaded resets the reload flag.
func (s *Store) MarkReloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shouldReload = false
}

// AddPoints adds amount to the account, rolling every 100 points into a
// level, and reports whether a level was gained. It sets the reload flag
// and schedules a background level sync whose failure is only logged.
// Syncs run one at a time and a burst of calls sends only the newest
// total after the one in flight.
func (s *Store) AddPoints(ctx context.Context, amount int) (bool, error) {
	if amount < 0 {
		return false, domain.ErrInvalidPoints.WithDetails(fmt.Sprintf("got %d", amount))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.account == nil {
		return false, domain.ErrNoAccount
	}
	updated, leveledUp, err := s.account.AddPoints(amount)
	if err != nil {
		return false, err
	}
	s.account = &updated
	s.shouldReload = true

	if s.syncer != nil {
		s.pending = &levelSync{ctx: context.WithoutCancel(ctx), level: updated.Level, points: updated.Points}
		if !s.syncing {
			s.syncing = true
			s.syncs.Add(1)
			go s.runSyncs()
		}
	}
	return leveledUp, nil
}

// MustAddPoints is AddPoints for callers that treat a missing account as a
// programming error. It panics instead of returning an error.
func (s *Store) MustAddPoints(ctx context.Context, amount int) bool {
	leveledUp, err := s.AddPoints(ctx, amount)
	if err != nil {
		panic(err)
	}
	return leveledUp
}

func (s *Store) runSyncs() {
	defer s.syncs.Done()

	for {
		s.mu.Lock()
		next := s.pending
		s.pending = nil
		if next == nil {
			s.syncing = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		s.syncLevel(next)
	}
}

func (s *Store) syncLevel(next *levelSync) {
	err := s.syncer.SyncLevel(next.ctx, next.level, next.points)
	if s.observer != nil {
		s.observer.ObserveLevelSync(err)
	}
	log := s.logger.WithContext(next.ctx)
	if err != nil {
		log.Warn("level sync failed", "level", next.level, "points", next.points, "error", err)
		return
	}
	log.Debug("level synced", "level", next.level, "points", next.points)
}

// WaitSync blocks until every background level sync has finished.
func (s *Store) WaitSync() {
	s.syncs.Wait()
}

// LevelUpNotice is the message shown after a level-up.
func LevelUpNotice(level int) string {
	return fmt.Sprintf("You are now level %d!", level)
}
