package guest

import (
	"context"

	"hotel-booking/apperrors"
	guestModel "hotel-booking/models/guest"
	"hotel-booking/storage"
	"hotel-booking/utils"
)

// Attributes carries the optional guest fields supplied on creation or merge.
// Nil pointers mean "leave the stored value alone".
type Attributes struct {
	FullName    string
	Email       *string
	Nationality *string
	IDType      *string
	IDNumber    *string
}

// Registry resolves and stores guest identity. Records are permanent once
// created: stay history references them forever, so no delete is exposed.
type Registry struct {
	store storage.Store
}

func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// ResolveOrCreate looks a guest up by phone and creates one if absent. The
// phone number is the dedup key: calling this twice with the same phone
// returns the same guest, whatever the secondary attributes say.
func (r *Registry) ResolveOrCreate(ctx context.Context, phone string, attrs Attributes) (*guestModel.Guest, error) {
	var out *guestModel.Guest
	err := r.store.Atomically(ctx, func(s storage.Store) error {
		g, err := ResolveOrCreateIn(ctx, s, phone, attrs)
		out = g
		return err
	})
	return out, err
}

// ResolveOrCreateIn is ResolveOrCreate running inside an existing unit of
// work, so the lifecycle engine can fold guest resolution into its booking
// transaction.
func ResolveOrCreateIn(ctx context.Context, s storage.Store, phone string, attrs Attributes) (*guestModel.Guest, error) {
	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return nil, apperrors.Validation("guest phone number is required")
	}

	existing, err := s.Guests().FindByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	g := &guestModel.Guest{
		FullName:    attrs.FullName,
		Phone:       normalized,
		Email:       attrs.Email,
		Nationality: attrs.Nationality,
		IDType:      attrs.IDType,
		IDNumber:    attrs.IDNumber,
	}
	if err := s.Guests().Insert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update merges contact and identity-document fields into an existing guest.
// Check-in uses this to record the ID document presented at the desk.
func (r *Registry) Update(ctx context.Context, guestID uint, attrs Attributes) (*guestModel.Guest, error) {
	var out *guestModel.Guest
	err := r.store.Atomically(ctx, func(s storage.Store) error {
		g, err := UpdateIn(ctx, s, guestID, attrs)
		out = g
		return err
	})
	return out, err
}

// UpdateIn is Update running inside an existing unit of work.
func UpdateIn(ctx context.Context, s storage.Store, guestID uint, attrs Attributes) (*guestModel.Guest, error) {
	g, err := s.Guests().Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NotFound("guest %d not found", guestID)
	}

	if attrs.FullName != "" {
		g.FullName = attrs.FullName
	}
	if attrs.Email != nil {
		g.Email = attrs.Email
	}
	if attrs.Nationality != nil {
		g.Nationality = attrs.Nationality
	}
	if attrs.IDType != nil {
		g.IDType = attrs.IDType
	}
	if attrs.IDNumber != nil {
		g.IDNumber = attrs.IDNumber
	}

	if err := s.Guests().Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns every registered guest.
func (r *Registry) List(ctx context.Context) ([]guestModel.Guest, error) {
	return r.store.Guests().List(ctx)
}

// Get returns one guest by id.
func (r *Registry) Get(ctx context.Context, guestID uint) (*guestModel.Guest, error) {
	g, err := r.store.Guests().Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperrors.NotFound("guest %d not found", guestID)
	}
	return g, nil
}
