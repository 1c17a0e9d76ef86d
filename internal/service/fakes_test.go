package service

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"travlr/internal/database"
	apperrors "travlr/internal/errors"
	"travlr/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrUserAlreadyExists
		}
	}

	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, salt, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Salt = salt
	user.Hash = hash
	return nil
}

func (f *fakeUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (f *fakeUserRepo) IncrementLoginAttempts(_ context.Context, id primitive.ObjectID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}
	user.LoginAttempts++
	return user.LoginAttempts, nil
}

func (f *fakeUserRepo) LockAccount(_ context.Context, id primitive.ObjectID, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.LockUntil = until
	return nil
}

func (f *fakeUserRepo) ResetLoginAttempts(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.LoginAttempts = 0
	user.LockUntil = time.Time{}
	return nil
}

func (f *fakeUserRepo) EnsureIndexes(_ context.Context) error { return nil }

// fakeTripRepo records the query it receives and returns canned results.
type fakeTripRepo struct {
	lastQuery *models.TripQuery

	trips    []models.Trip
	total    int64
	findErr  error
	byCode   map[string]*models.Trip
	imageSet map[string]string
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		byCode:   make(map[string]*models.Trip),
		imageSet: make(map[string]string),
	}
}

func (f *fakeTripRepo) Create(_ context.Context, trip *models.Trip) error {
	if _, ok := f.byCode[trip.Code]; ok {
		return apperrors.ErrTripCodeTaken
	}
	trip.ID = primitive.NewObjectID()
	f.byCode[trip.Code] = trip
	return nil
}

func (f *fakeTripRepo) FindByCode(_ context.Context, code string) (*models.Trip, error) {
	trip, ok := f.byCode[code]
	if !ok {
		return nil, apperrors.ErrTripNotFound
	}
	return trip, nil
}

func (f *fakeTripRepo) Find(_ context.Context, query *models.TripQuery) ([]models.Trip, int64, error) {
	f.lastQuery = query
	if f.findErr != nil {
		return nil, 0, f.findErr
	}
	return f.trips, f.total, nil
}

func (f *fakeTripRepo) Update(_ context.Context, code string, _ *models.UpdateTripRequest) (*models.Trip, error) {
	trip, ok := f.byCode[code]
	if !ok {
		return nil, apperrors.ErrTripNotFound
	}
	return trip, nil
}

func (f *fakeTripRepo) Delete(_ context.Context, code string) error {
	if _, ok := f.byCode[code]; !ok {
		return apperrors.ErrTripNotFound
	}
	delete(f.byCode, code)
	return nil
}

func (f *fakeTripRepo) SetImage(_ context.Context, code, imageKey string) error {
	if _, ok := f.byCode[code]; !ok {
		return apperrors.ErrTripNotFound
	}
	f.imageSet[code] = imageKey
	return nil
}

func (f *fakeTripRepo) EnsureIndexes(_ context.Context) error { return nil }

// fakeStorage returns deterministic URLs.
type fakeStorage struct {
	getErr error
	putErr error
}

func (f *fakeStorage) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return "https://storage.example.com/get/" + key, nil
}

func (f *fakeStorage) GetPresignedPutURL(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	return "https://storage.example.com/put/" + key, nil
}

func (f *fakeStorage) PutObject(_ context.Context, _ string, _ io.Reader, _ string) error {
	return nil
}

// fakeCache is an in-memory Cache backed by JSON, mirroring the Redis wrapper.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

// fakeHealthDB simulates database health probes.
type fakeHealthDB struct {
	pingErr  error
	stats    *database.Stats
	statsErr error
}

func (f *fakeHealthDB) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeHealthDB) Stats(_ context.Context) (*database.Stats, error) {
	return f.stats, f.statsErr
}
