package storage

import (
	"context"
	"os"

	"hotel-booking/logger"
	settingsModel "hotel-booking/models/settings"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// InitRedis connects the local key-value store used for front-desk settings.
func InitRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		logger.Warning("REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	logger.Info("Redis initialized with address: " + redisURL)
}

const settingsKey = "hotel:settings"

// SettingsStore keeps front-desk settings in a redis hash.
type SettingsStore struct {
	client *redis.Client
}

// NewSettingsStore creates a settings store on an open redis client.
func NewSettingsStore(client *redis.Client) *SettingsStore {
	return &SettingsStore{client: client}
}

// Get returns the stored settings, falling back to defaults for any field
// that has never been written.
func (s *SettingsStore) Get(ctx context.Context) (settingsModel.Settings, error) {
	out := settingsModel.Defaults()
	fields, err := s.client.HGetAll(ctx, settingsKey).Result()
	if err != nil {
		return out, err
	}
	if v, ok := fields["check_in_time"]; ok && v != "" {
		out.CheckInTime = v
	}
	if v, ok := fields["check_out_time"]; ok && v != "" {
		out.CheckOutTime = v
	}
	if v, ok := fields["language"]; ok && v != "" {
		out.Language = v
	}
	return out, nil
}

// Save overwrites the stored settings.
func (s *SettingsStore) Save(ctx context.Context, settings settingsModel.Settings) error {
	return s.client.HSet(ctx, settingsKey,
		"check_in_time", settings.CheckInTime,
		"check_out_time", settings.CheckOutTime,
		"language", settings.Language,
	).Err()
}
