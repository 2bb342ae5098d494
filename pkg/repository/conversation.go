package repository

import (
	"sync"
	"time"

	"github.com/dskvich/openai-payloads/pkg/domain"
)

type conversationEntry struct {
	conv       *domain.Conversation
	lastUpdate time.Time
}

// conversationRepository keeps conversations in memory. Entries older than
// their TTL are treated as missing; a TTL of zero keeps them forever.
type conversationRepository struct {
	mu         sync.RWMutex
	convs      map[string]conversationEntry
	convTTL    map[string]time.Duration
	defaultTTL time.Duration
	now        func() time.Time
}

func NewConversationRepository(defaultTTL time.Duration) *conversationRepository {
	return &conversationRepository{
		convs:      make(map[string]conversationEntry),
		convTTL:    make(map[string]time.Duration),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (c *conversationRepository) SetTTL(id string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.convTTL[id] = ttl
}

// Save stores a copy of conv, so later changes by the caller are not visible
// until the next Save.
func (c *conversationRepository) Save(id string, conv *domain.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeExpired()

	c.convs[id] = conversationEntry{
		conv:       conv.Clone(),
		lastUpdate: c.now(),
	}
}

// GetByID returns a copy of the stored conversation.
func (c *conversationRepository) GetByID(id string) (*domain.Conversation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.convs[id]
	if !ok || c.expired(id, entry) {
		return nil, false
	}

	return entry.conv.Clone(), true
}

func (c *conversationRepository) Clear(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.convs, id)
}

func (c *conversationRepository) ttl(id string) time.Duration {
	if ttl, ok := c.convTTL[id]; ok {
		return ttl
	}
	return c.defaultTTL
}

func (c *conversationRepository) expired(id string, entry conversationEntry) bool {
	ttl := c.ttl(id)
	return ttl > 0 && c.now().Sub(entry.lastUpdate) > ttl
}

func (c *conversationRepository) purgeExpired() {
	for id, entry := range c.convs {
		if c.expired(id, entry) {
			delete(c.convs, id)
		}
	}
}
