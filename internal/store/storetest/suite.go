package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/atlasgrid/user-atlas/internal/model"
	"github.com/atlasgrid/user-atlas/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	id := uuid.New().String()
	u := &model.User{
		ID:        id,
		Name:      "Test User",
		ZipCode:   "10001",
		Latitude:  40.7505,
		Longitude: -73.9934,
		Timezone:  "UTC-05:00",
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Put + Get
	if err := s.Users().Put(ctx, u); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Users().Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != id || got.Name != "Test User" || got.ZipCode != "10001" || got.Timezone != "UTC-05:00" {
		t.Fatalf("Get: unexpected record %+v", got)
	}
	if got.Latitude != 40.7505 || got.Longitude != -73.9934 {
		t.Fatalf("Get: coordinates not preserved %+v", got)
	}
	if !got.CreatedAt.UTC().Equal(now) || !got.UpdatedAt.UTC().Equal(now) {
		t.Fatalf("Get: timestamps not preserved created=%v updated=%v want=%v", got.CreatedAt, got.UpdatedAt, now)
	}

	// Put with the same id overwrites
	later := now.Add(time.Minute)
	u2 := *u
	u2.Name = "Renamed"
	u2.ZipCode = "94103"
	u2.Latitude = 37.7725
	u2.Longitude = -122.4147
	u2.Timezone = "UTC-08:00"
	u2.UpdatedAt = later
	if err := s.Users().Put(ctx, &u2); err != nil {
		t.Fatalf("Put (overwrite): %v", err)
	}
	got, err = s.Users().Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if got.Name != "Renamed" || got.ZipCode != "94103" || got.Timezone != "UTC-08:00" {
		t.Fatalf("overwrite not applied: %+v", got)
	}
	if !got.CreatedAt.UTC().Equal(now) || !got.UpdatedAt.UTC().Equal(later) {
		t.Fatalf("overwrite timestamps wrong: %+v", got)
	}

	// List contains the record
	lst, err := s.Users().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	found := false
	for _, m := range lst {
		if m.ID == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("List: record %s missing from %d results", id, len(lst))
	}

	// Get for an unknown id
	if _, err := s.Users().Get(ctx, "missing-"+id); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get missing: want ErrNotFound, got %v", err)
	}

	// Delete, then every subsequent op reports not found
	if err := s.Users().Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Users().Get(ctx, id); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get after delete: want ErrNotFound, got %v", err)
	}
	if err := s.Users().Delete(ctx, id); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("second Delete: want ErrNotFound, got %v", err)
	}
}
