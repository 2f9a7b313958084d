package settings

import (
	"context"

	"hotel-booking/apperrors"
	settingsModel "hotel-booking/models/settings"
	"hotel-booking/storage"
	"hotel-booking/utils"
)

// Service reads and updates front-desk settings held in the key-value store.
type Service struct {
	store *storage.SettingsStore
}

func NewService(store *storage.SettingsStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context) (settingsModel.Settings, error) {
	return s.store.Get(ctx)
}

// Update validates and persists new settings.
func (s *Service) Update(ctx context.Context, in settingsModel.Settings) (settingsModel.Settings, error) {
	if !utils.ValidateTimeOfDay(in.CheckInTime) {
		return settingsModel.Settings{}, apperrors.Validation("check-in time must be HH:MM, got %q", in.CheckInTime)
	}
	if !utils.ValidateTimeOfDay(in.CheckOutTime) {
		return settingsModel.Settings{}, apperrors.Validation("check-out time must be HH:MM, got %q", in.CheckOutTime)
	}
	if in.Language != "English" && in.Language != "French" {
		return settingsModel.Settings{}, apperrors.Validation("language must be English or French, got %q", in.Language)
	}
	if err := s.store.Save(ctx, in); err != nil {
		return settingsModel.Settings{}, err
	}
	return in, nil
}
