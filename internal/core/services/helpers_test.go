package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type mapCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

type scanner[T any] interface {
	*T
	ScanDest() []interface{}
}

// memoryRepo keeps rows as column maps and builds records through ScanDest,
// the same way the SQL repository does.
type memoryRepo[T any, PT scanner[T]] struct {
	schema    domain.Schema
	rows      map[string]domain.Fields
	order     []string
	inserts   int
	patches   int
	insertErr error
}

func newMemoryRepo[T any, PT scanner[T]](schema domain.Schema) *memoryRepo[T, PT] {
	return &memoryRepo[T, PT]{schema: schema, rows: make(map[string]domain.Fields)}
}

func (r *memoryRepo[T, PT]) List(_ context.Context) ([]*T, error) {
	records := make([]*T, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		if row, ok := r.rows[r.order[i]]; ok {
			records = append(records, r.build(row))
		}
	}
	return records, nil
}

func (r *memoryRepo[T, PT]) Get(_ context.Context, id string) (*T, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.build(row), nil
}

func (r *memoryRepo[T, PT]) Insert(_ context.Context, fields domain.Fields) error {
	r.inserts++
	if r.insertErr != nil {
		return r.insertErr
	}
	id := fields["id"].(string)
	if _, exists := r.rows[id]; exists {
		return fmt.Errorf("duplicate id %s", id)
	}
	row := domain.Fields{}
	for k, v := range fields {
		row[k] = v
	}
	r.rows[id] = row
	r.order = append(r.order, id)
	return nil
}

func (r *memoryRepo[T, PT]) Patch(_ context.Context, id string, fields domain.Fields) error {
	r.patches++
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	for k, v := range fields {
		row[k] = v
	}
	return nil
}

func (r *memoryRepo[T, PT]) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memoryRepo[T, PT]) build(row domain.Fields) *T {
	var record T
	dests := PT(&record).ScanDest()
	for i, column := range r.schema.Columns {
		switch d := dests[i].(type) {
		case *string:
			*d, _ = row[column].(string)
		case *int:
			v, _ := row[column].(int64)
			*d = int(v)
		case *float64:
			*d, _ = row[column].(float64)
		case *domain.Timestamp:
			*d, _ = row[column].(domain.Timestamp)
		}
	}
	return &record
}

// stepClock returns strictly increasing instants one millisecond apart.
type stepClock struct {
	current time.Time
}

func (c *stepClock) now() time.Time {
	c.current = c.current.Add(time.Millisecond)
	return c.current
}
