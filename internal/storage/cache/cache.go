package cache

import (
	"sync"

	"github.com/darkphonix1200/QZArena/internal/models"
)

// Cache keeps each user's in-progress quiz session. Sessions are
// volatile and live only for one quiz attempt.
type Cache struct {
	mu       sync.Mutex
	sessions map[int64]models.Session
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[int64]models.Session),
	}
}

func (c *Cache) SetSession(userID int64, session models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[userID] = session
}

func (c *Cache) GetSession(userID int64) (models.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, exists := c.sessions[userID]
	return session, exists
}

func (c *Cache) DeleteSession(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}
