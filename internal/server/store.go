package server

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/gochess/internal/errors"
	"github.com/lgbarn/gochess/internal/session"
)

// game is a stored session. Its mutex serializes every request on the game,
// including a running AI search.
type game struct {
	mu      sync.Mutex
	session *session.Session
}

// Store holds the live sessions keyed by uuid.
type Store struct {
	games map[string]*game
	max   int
	mu    sync.RWMutex
}

// NewStore creates a store holding at most max games; 0 means unlimited.
func NewStore(max int) *Store {
	return &Store{
		games: make(map[string]*game),
		max:   max,
	}
}

// Create stores s under a new id.
func (st *Store) Create(s *session.Session) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.max > 0 && len(st.games) >= st.max {
		return "", errors.Wrapf(ErrTooManyGames, "%d games open", len(st.games))
	}
	id := uuid.New().String()
	st.games[id] = &game{session: s}
	return id, nil
}

// With runs fn with exclusive access to the session stored under id.
func (st *Store) With(id string, fn func(*session.Session) error) error {
	st.mu.RLock()
	g, ok := st.games[id]
	st.mu.RUnlock()
	if !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.session)
}

// Each runs fn on every stored game in id order, holding each game's lock in
// turn. Games created while Each runs are not visited, and games deleted
// meanwhile are still visited once.
func (st *Store) Each(fn func(id string, s *session.Session) error) error {
	st.mu.RLock()
	games := maps.Clone(st.games)
	st.mu.RUnlock()
	ids := maps.Keys(games)
	slices.Sort(ids)

	for _, id := range ids {
		g := games[id]
		g.mu.Lock()
		err := fn(id, g.session)
		g.mu.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the game stored under id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %q", id)
	}
	delete(st.games, id)
	return nil
}

// Len returns the number of stored games.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.games)
}
