package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/internal/ports"
	"github.com/Gunvolt24/streets_etl/pkg/metrics"
)

var _ ports.StreetCache = (*LRUCacheTTL)(nil)

type entry struct {
	key       domain.StreetKey
	street    *domain.Street
	expiresAt time.Time
}

// LRUCacheTTL - LRU-кэш улиц по натуральному ключу с фиксированным TTL:
// срок жизни отсчитывается от Set и не продлевается чтением, так что
// устаревшая запись, попавшая в кэш в гонке с сохранением, живёт не дольше TTL.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	cache map[domain.StreetKey]*list.Element

	mu sync.Mutex
}

func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		cache:    make(map[domain.StreetKey]*list.Element),
	}
}

// Get - копия записи; TTL не продлевается.
func (c *LRUCacheTTL) Get(_ context.Context, key domain.StreetKey) (*domain.Street, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneStreet(ent.street), true
}

// Set - запись в кэш. Если в кэше уже лежит более свежая версия (по UpdatedAt),
// она сохраняется: чтение из хранилища, начатое до сохранения, не откатит её.
func (c *LRUCacheTTL) Set(_ context.Context, street *domain.Street) error {
	if street == nil {
		return nil
	}
	key := street.Key()
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		ent := elem.Value.(*entry)
		if ent.street.UpdatedAt.After(street.UpdatedAt) {
			c.ll.MoveToFront(elem)
			return nil
		}
		ent.street = cloneStreet(street)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		key:       key,
		street:    cloneStreet(street),
		expiresAt: c.expiryFrom(now),
	})
	c.cache[key] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

func (c *LRUCacheTTL) Delete(_ context.Context, key domain.StreetKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[key]; ok {
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
	}
}

// WarmUp - заливка пачки записей (например, последних обновлённых из хранилища).
func (c *LRUCacheTTL) WarmUp(ctx context.Context, streets []*domain.Street) error {
	for _, street := range streets {
		if err := c.Set(ctx, street); err != nil {
			return err
		}
	}
	return nil
}

// Len - текущее число записей.
func (c *LRUCacheTTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
