package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/motodash/internal/core/domain"
	"github.com/sm8ta/motodash/internal/core/ports"
)

const DefaultCacheTTL = 15 * time.Minute

// ResourceService runs create/read/update/delete for one resource type.
type ResourceService[T any, I domain.Input] struct {
	schema   domain.Schema
	repo     ports.Repository[T]
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
	cacheTTL time.Duration
	newInput func() I
	now      func() time.Time
}

func NewResourceService[T any, I domain.Input](
	schema domain.Schema,
	repo ports.Repository[T],
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	newInput func() I,
) *ResourceService[T, I] {
	return &ResourceService[T, I]{
		schema:   schema,
		repo:     repo,
		logger:   logger,
		validate: validate,
		cache:    cache,
		cacheTTL: DefaultCacheTTL,
		newInput: newInput,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetCacheTTL overrides how long Get results stay cached.
func (s *ResourceService[T, I]) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		s.cacheTTL = ttl
	}
}

func (s *ResourceService[T, I]) Resource() string {
	return s.schema.Resource
}

func (s *ResourceService[T, I]) NewInput() I {
	return s.newInput()
}

func (s *ResourceService[T, I]) List(ctx context.Context) ([]*T, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list records", map[string]interface{}{
			"resource": s.schema.Resource,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Listed records", map[string]interface{}{
		"resource": s.schema.Resource,
		"count":    len(records),
	})

	return records, nil
}

func (s *ResourceService[T, I]) Get(ctx context.Context, id string) (*T, error) {
	cacheKey := s.cacheKey(id)
	cachedData, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var cached T
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.logger.Debug("Record found in cache", map[string]interface{}{
				"resource": s.schema.Resource,
				"id":       id,
			})
			return &cached, nil
		}
	}

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to get record", map[string]interface{}{
				"resource": s.schema.Resource,
				"id":       id,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("Failed to marshal record for cache", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
	} else if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache record", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
	}

	return record, nil
}

// Create validates the payload, assigns id and timestamps, stores the record
// and returns it as read back from the store.
func (s *ResourceService[T, I]) Create(ctx context.Context, in I) (*T, error) {
	if err := validateInput(s.validate, in, nil); err != nil {
		s.logger.Warn("Validation failed", map[string]interface{}{
			"resource": s.schema.Resource,
			"error":    err.Error(),
		})
		return nil, err
	}

	fields, err := in.Values(false)
	if err != nil {
		return nil, err
	}

	id := in.SuppliedID()
	if id == "" {
		id = uuid.NewString()
	}
	now := domain.NewTimestamp(s.now())
	fields["id"] = id
	fields["created_at"] = now
	fields["updated_at"] = now

	if err := s.repo.Insert(ctx, fields); err != nil {
		s.logger.Error("Failed to create record", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
		return nil, err
	}

	created, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("re-read created %s %s: %w", s.schema.Resource, id, err)
	}

	s.logger.Info("Record created successfully", map[string]interface{}{
		"resource": s.schema.Resource,
		"id":       id,
	})

	return created, nil
}

// Update stores only the supplied fields plus a fresh updated_at. An update
// without any recognized field is rejected before storage is touched.
func (s *ResourceService[T, I]) Update(ctx context.Context, id string, in I) (*T, error) {
	supplied := suppliedFields(in)
	if len(supplied) == 0 {
		return nil, domain.ErrNoChanges
	}

	if err := validateInput(s.validate, in, supplied); err != nil {
		s.logger.Warn("Validation failed", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
		return nil, err
	}

	fields, err := in.Values(true)
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = domain.NewTimestamp(s.now())

	if err := s.repo.Patch(ctx, id, fields); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to update record", map[string]interface{}{
				"resource": s.schema.Resource,
				"id":       id,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	s.invalidate(ctx, id)

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("re-read updated %s %s: %w", s.schema.Resource, id, err)
	}

	s.logger.Info("Record updated successfully", map[string]interface{}{
		"resource": s.schema.Resource,
		"id":       id,
		"fields":   supplied,
	})

	return updated, nil
}

// Delete is idempotent. Dependent records of other resource types are left
// in place.
func (s *ResourceService[T, I]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete record", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
		return err
	}

	s.invalidate(ctx, id)

	s.logger.Info("Record deleted successfully", map[string]interface{}{
		"resource": s.schema.Resource,
		"id":       id,
	})

	return nil
}

func (s *ResourceService[T, I]) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
		s.logger.Warn("Failed to invalidate cache", map[string]interface{}{
			"resource": s.schema.Resource,
			"id":       id,
			"error":    err.Error(),
		})
	}
}

func (s *ResourceService[T, I]) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", s.schema.Resource, id)
}
