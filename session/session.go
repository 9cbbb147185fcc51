// Package session tracks the meta-game: which level is being played and how
// many lives remain. A single Session is created by main and handed to every
// scene and UI constructor.
package session

import "github.com/automoto/starpuff/config"

// Snapshot is the read-only view passed to subscribers
type Snapshot struct {
	Level int
	Lives int
}

type Session struct {
	Level      int
	Lives      int
	FinalLevel int

	nextID    int
	listeners map[int]func(Snapshot)
}

// New returns a session at the starting level with full lives
func New(finalLevel int) *Session {
	s := &Session{
		FinalLevel: finalLevel,
		listeners:  make(map[int]func(Snapshot)),
	}
	s.Reset()
	return s
}

// Reset restores the defaults used when a new run starts
func (s *Session) Reset() {
	s.Level = config.Session.StartingLevel
	s.Lives = config.Session.StartingLives
	s.notify()
}

// LoseLife removes one life and reports whether none are left
func (s *Session) LoseLife() (gameOver bool) {
	if s.Lives > 0 {
		s.Lives--
	}
	s.notify()
	return s.IsGameOver()
}

func (s *Session) IsGameOver() bool {
	return s.Lives == 0
}

// Advance moves to the next level. Past the final level the run starts over
// and wrapped is true.
func (s *Session) Advance() (wrapped bool) {
	if s.Level >= s.FinalLevel {
		s.Reset()
		return true
	}
	s.Level++
	s.notify()
	return false
}

// SetLevel jumps straight to a level, used by the -level flag
func (s *Session) SetLevel(level int) {
	if level < 1 || level > s.FinalLevel {
		return
	}
	s.Level = level
	s.notify()
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{Level: s.Level, Lives: s.Lives}
}

// Subscribe calls fn with the current values and again on every change.
// The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	fn(s.Snapshot())
	return func() {
		delete(s.listeners, id)
	}
}

func (s *Session) notify() {
	snap := s.Snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
}
