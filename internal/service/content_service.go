package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/events"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
)

// Content validation sentinels.
var (
	ErrMissingContentFields = errors.New("required fields are missing")
	ErrInvalidCategory      = errors.New("category must be coffee, food or pastry")
)

// ContentService owns menu items, offers and staff profiles. Mutations
// publish change events; the cache invalidator drops the affected public
// routes in response. Mutating operations accept any authenticated role.
type ContentService struct {
	menu       repository.MenuItemRepository
	offers     repository.OfferRepository
	staff      repository.StaffProfileRepository
	dispatcher events.Dispatcher
}

// NewContentService builds the service.
func NewContentService(
	menu repository.MenuItemRepository,
	offers repository.OfferRepository,
	staff repository.StaffProfileRepository,
	dispatcher events.Dispatcher,
) *ContentService {
	return &ContentService{menu: menu, offers: offers, staff: staff, dispatcher: dispatcher}
}

func (s *ContentService) publish(ctx context.Context, eventType events.EventType, change events.ChangeKind, recordID string, caller *auth.Identity) {
	if s.dispatcher == nil {
		return
	}
	actorID := ""
	if caller != nil {
		actorID = caller.ID
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Change:    change,
		RecordID:  recordID,
		ActorID:   actorID,
		Timestamp: time.Now(),
	})
}

// PublicMenu returns available menu items for the storefront.
func (s *ContentService) PublicMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, true)
}

// ListMenu returns all menu items for the dashboard.
func (s *ContentService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.List(ctx, false)
}

// GetMenuItem returns one menu item.
func (s *ContentService) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

// CreateMenuItem persists a new menu item.
func (s *ContentService) CreateMenuItem(ctx context.Context, caller *auth.Identity, item *domain.MenuItem) error {
	if item.Name == "" || item.Description == "" {
		return ErrMissingContentFields
	}
	if !item.Category.Valid() {
		return ErrInvalidCategory
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return err
	}
	s.publish(ctx, events.EventMenuChanged, events.ChangeCreated, item.ID, caller)
	return nil
}

// UpdateMenuItem persists changes to a menu item.
func (s *ContentService) UpdateMenuItem(ctx context.Context, caller *auth.Identity, item *domain.MenuItem) error {
	if item.Name == "" || item.Description == "" {
		return ErrMissingContentFields
	}
	if !item.Category.Valid() {
		return ErrInvalidCategory
	}
	if err := s.menu.Update(ctx, item); err != nil {
		return err
	}
	s.publish(ctx, events.EventMenuChanged, events.ChangeUpdated, item.ID, caller)
	return nil
}

// DeleteMenuItem removes a menu item.
func (s *ContentService) DeleteMenuItem(ctx context.Context, caller *auth.Identity, id string) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventMenuChanged, events.ChangeDeleted, id, caller)
	return nil
}

// PublicOffers returns active offers for the storefront.
func (s *ContentService) PublicOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx, true)
}

// ListOffers returns all offers for the dashboard.
func (s *ContentService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.offers.List(ctx, false)
}

// GetOffer returns one offer.
func (s *ContentService) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	return s.offers.GetByID(ctx, id)
}

// CreateOffer persists a new offer.
func (s *ContentService) CreateOffer(ctx context.Context, caller *auth.Identity, offer *domain.Offer) error {
	if offer.Title == "" || offer.Description == "" {
		return ErrMissingContentFields
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return err
	}
	s.publish(ctx, events.EventOfferChanged, events.ChangeCreated, offer.ID, caller)
	return nil
}

// UpdateOffer persists changes to an offer.
func (s *ContentService) UpdateOffer(ctx context.Context, caller *auth.Identity, offer *domain.Offer) error {
	if offer.Title == "" || offer.Description == "" {
		return ErrMissingContentFields
	}
	if err := s.offers.Update(ctx, offer); err != nil {
		return err
	}
	s.publish(ctx, events.EventOfferChanged, events.ChangeUpdated, offer.ID, caller)
	return nil
}

// DeleteOffer removes an offer.
func (s *ContentService) DeleteOffer(ctx context.Context, caller *auth.Identity, id string) error {
	if err := s.offers.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventOfferChanged, events.ChangeDeleted, id, caller)
	return nil
}

// PublicStaff returns active staff profiles for the storefront.
func (s *ContentService) PublicStaff(ctx context.Context) ([]domain.StaffProfile, error) {
	return s.staff.List(ctx, true)
}

// ListStaff returns all staff profiles for the dashboard.
func (s *ContentService) ListStaff(ctx context.Context) ([]domain.StaffProfile, error) {
	return s.staff.List(ctx, false)
}

// GetStaffProfile returns one staff profile.
func (s *ContentService) GetStaffProfile(ctx context.Context, id string) (*domain.StaffProfile, error) {
	return s.staff.GetByID(ctx, id)
}

// CreateStaffProfile persists a new staff profile.
func (s *ContentService) CreateStaffProfile(ctx context.Context, caller *auth.Identity, profile *domain.StaffProfile) error {
	if profile.Name == "" || profile.Role == "" || profile.Bio == "" {
		return ErrMissingContentFields
	}
	if err := s.staff.Create(ctx, profile); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffChanged, events.ChangeCreated, profile.ID, caller)
	return nil
}

// UpdateStaffProfile persists changes to a staff profile.
func (s *ContentService) UpdateStaffProfile(ctx context.Context, caller *auth.Identity, profile *domain.StaffProfile) error {
	if profile.Name == "" || profile.Role == "" || profile.Bio == "" {
		return ErrMissingContentFields
	}
	if err := s.staff.Update(ctx, profile); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffChanged, events.ChangeUpdated, profile.ID, caller)
	return nil
}

// DeleteStaffProfile removes a staff profile.
func (s *ContentService) DeleteStaffProfile(ctx context.Context, caller *auth.Identity, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffChanged, events.ChangeDeleted, id, caller)
	return nil
}
