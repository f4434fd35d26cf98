package cache

import (
	"fmt"
	"time"

	"github.com/groupup/groupup-backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// Group rows never change after creation, so cached lookups only go
// stale on deletion. The TTL is a backstop for missed invalidations.
const GroupCodeTTL = 10 * time.Minute

// GroupCache caches join-code lookups. All methods are safe on a nil
// receiver so the service runs uncached when Redis is unavailable.
type GroupCache struct {
	redis *RedisCache
}

// NewGroupCache creates a new group cache
func NewGroupCache(redis *RedisCache) *GroupCache {
	return &GroupCache{redis: redis}
}

func codeKey(code string) string {
	return fmt.Sprintf("group:code:%s", code)
}

// GetByCode returns the cached group for a join code, or nil on miss.
func (gc *GroupCache) GetByCode(code string) *models.Group {
	if gc == nil || gc.redis == nil {
		return nil
	}
	data, err := gc.redis.Get(codeKey(code))
	if err != nil || data == nil {
		return nil
	}
	var group models.Group
	if err := msgpack.Unmarshal(data, &group); err != nil {
		return nil
	}
	return &group
}

// SetByCode caches a group under its join code
func (gc *GroupCache) SetByCode(group *models.Group) {
	if gc == nil || gc.redis == nil {
		return
	}
	data, err := msgpack.Marshal(group)
	if err != nil {
		return
	}
	_ = gc.redis.Set(codeKey(group.Code), data, GroupCodeTTL)
}

// InvalidateCode drops the cached entry for a join code
func (gc *GroupCache) InvalidateCode(code string) {
	if gc == nil || gc.redis == nil {
		return
	}
	_ = gc.redis.Delete(codeKey(code))
}
