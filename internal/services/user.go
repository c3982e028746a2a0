package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atlasgrid/user-atlas/internal/api/validate"
	"github.com/atlasgrid/user-atlas/internal/geocode"
	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store"
)

const lockStripes = 64

// UserService owns the user-record lifecycle: validation, geolocation
// enrichment and persistence. Update and delete serialize per identifier
// through striped locks so concurrent read-modify-write on the same record
// cannot interleave within this process.
type UserService struct {
	store  store.Store
	lookup geocode.Lookup
	now    func() time.Time
	newID  func() string
	locks  [lockStripes]sync.Mutex
}

func NewUserService(s store.Store, lookup geocode.Lookup) *UserService {
	return &UserService{
		store:  s,
		lookup: lookup,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

func (s *UserService) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// CreateUser validates input, resolves the ZIP code's geolocation and
// persists a new record. Nothing is persisted when the lookup fails.
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if err := validate.UserName(req.Name); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	if err := validate.ZipCode(req.ZipCode); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
	}

	loc, err := s.lookup.Resolve(ctx, req.ZipCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := &model.User{
		ID:        s.newID(),
		Name:      req.Name,
		ZipCode:   req.ZipCode,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Timezone:  loc.UTCOffset,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Users().Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns every stored record. Ordering is not contracted.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

// GetUser returns one record or model.ErrNotFound.
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.store.Users().Get(ctx, id)
}

// UpdateUser applies a partial update. A changed ZIP code triggers exactly
// one lookup and replaces zip/latitude/longitude/timezone together; a lookup
// failure leaves the stored record untouched. UpdatedAt advances on every
// successful update, even an empty patch.
func (s *UserService) UpdateUser(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	if req.Name != nil {
		if err := validate.UserName(*req.Name); err != nil {
			return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
		}
	}
	if req.ZipCode != nil {
		if err := validate.ZipCode(*req.ZipCode); err != nil {
			return nil, fmt.Errorf("%w: %s", model.ErrValidation, err)
		}
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	u, err := s.store.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ZipCode != nil && *req.ZipCode != u.ZipCode {
		loc, err := s.lookup.Resolve(ctx, *req.ZipCode)
		if err != nil {
			return nil, err
		}
		u.ZipCode = *req.ZipCode
		u.Latitude = loc.Latitude
		u.Longitude = loc.Longitude
		u.Timezone = loc.UTCOffset
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	u.UpdatedAt = s.now()

	if err := s.store.Users().Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the record. A second delete of the same id reports
// model.ErrNotFound.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()
	return s.store.Users().Delete(ctx, id)
}
