package service

import (
	"sync"
	"time"

	"github.com/ratel-online/uno/uno/game"
)

type Session struct {
	sync.Mutex

	ID         int64      `json:"id"`
	Token      string     `json:"token"`
	Players    []string   `json:"players"`
	Game       *game.Game `json:"-"`
	CreatedAt  time.Time  `json:"createdAt"`
	ActiveTime time.Time  `json:"activeTime"`
}

// Do runs fn with the session locked.
func (s *Session) Do(fn func(g *game.Game) error) error {
	s.Lock()
	defer s.Unlock()
	s.ActiveTime = time.Now()
	return fn(s.Game)
}

// idle is false while the session is in use.
func (s *Session) idle(now time.Time, timeout time.Duration) bool {
	if !s.TryLock() {
		return false
	}
	defer s.Unlock()
	return s.ActiveTime.Add(timeout).Before(now)
}
