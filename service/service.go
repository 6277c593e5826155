package service

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var sessionIds int64 = 0
var sessions = hashmap.New()
var idleTimeout = int64(consts.SessionIdleTimeout)

func init() {
	async.Async(func() {
		for {
			time.Sleep(consts.ReapInterval)
			Reap(time.Now())
		}
	})
}

func SetIdleTimeout(timeout time.Duration) {
	atomic.StoreInt64(&idleTimeout, int64(timeout))
}

// Create starts a game for names and registers it.
func Create(names []string, rules game.Rules) (*Session, error) {
	g, err := game.New(names, rules)
	if err != nil {
		return nil, err
	}
	if _, err = g.Start(); err != nil {
		return nil, err
	}

	now := time.Now()
	session := &Session{
		ID:         atomic.AddInt64(&sessionIds, 1),
		Token:      uuid.NewString(),
		Players:    g.PlayerNames(),
		Game:       g,
		CreatedAt:  now,
		ActiveTime: now,
	}
	sessions.Set(session.ID, session)
	log.Infof("session %d created for %s\n", session.ID, strings.Join(session.Players, ", "))
	return session, nil
}

func Get(id int64) (*Session, error) {
	if v, ok := sessions.Get(id); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsSessionInvalid
}

func GetByToken(token string) (*Session, error) {
	var found *Session
	sessions.Foreach(func(e *hashmap.Entry) {
		if session := e.Value().(*Session); session.Token == token {
			found = session
		}
	})
	if found == nil {
		return nil, consts.ErrorsSessionInvalid
	}
	return found, nil
}

func Remove(id int64) bool {
	if _, ok := sessions.Get(id); !ok {
		return false
	}
	sessions.Del(id)
	log.Infof("session %d removed.\n", id)
	return true
}

func Sessions() []*Session {
	list := make([]*Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Snapshot is the JSON view of the game seen from seat.
func Snapshot(id int64, seat int) ([]byte, error) {
	session, err := Get(id)
	if err != nil {
		return nil, err
	}
	var state game.State
	err = session.Do(func(g *game.Game) error {
		if seat < 0 || seat >= len(session.Players) {
			return consts.ErrorsInvalidTarget
		}
		state = g.State(seat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(state), nil
}

// Reap drops the sessions idle at now and returns how many went.
func Reap(now time.Time) int {
	timeout := time.Duration(atomic.LoadInt64(&idleTimeout))
	removed := 0
	for _, session := range Sessions() {
		if session.idle(now, timeout) {
			log.Infof("session %d is idle for %s, removed.\n", session.ID, timeout)
			sessions.Del(session.ID)
			removed++
		}
	}
	return removed
}
