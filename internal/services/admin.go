package services

import (
	"context"

	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/model"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/story"
)

// AdminService provides the allow-list gated operational listing. It never
// mutates anything.
type AdminService struct {
	store  store.Store
	admins auth.Admins
}

func NewAdminService(s store.Store, admins auth.Admins) *AdminService {
	return &AdminService{store: s, admins: admins}
}

// ListAll returns every aggregate across all users for the given admin
// identity. Non-allow-listed emails receive an authorization error.
func (s *AdminService) ListAll(ctx context.Context, who *auth.Identity) ([]*model.UserRecord, error) {
	if who == nil || !s.admins.Allowed(who.Email) {
		return nil, story.NewAuthorizationError("this view is restricted to admin accounts")
	}
	records, err := s.store.Autobiographies().ListAll(ctx)
	if err != nil {
		return nil, story.NewExternalServiceError("record store", err)
	}
	return records, nil
}
