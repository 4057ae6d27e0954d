package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/story"
)

func TestAdminListAllAllowListed(t *testing.T) {
	st := newFakeStore()
	savedFixture(t, st, "u1")
	savedFixture(t, st, "u2")
	svc := NewAdminService(st, auth.NewAdmins([]string{"Admin@Memoir.example"}))

	records, err := svc.ListAll(context.Background(), &auth.Identity{UserID: "a1", Email: "admin@memoir.example"})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAdminListAllRejectsOutsiders(t *testing.T) {
	svc := NewAdminService(newFakeStore(), auth.NewAdmins([]string{"admin@memoir.example"}))

	_, err := svc.ListAll(context.Background(), &auth.Identity{UserID: "u1", Email: "user@memoir.example"})
	require.Error(t, err)
	assert.True(t, story.IsAuthorizationError(err))

	_, err = svc.ListAll(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, story.IsAuthorizationError(err))
}

func TestAdminListAllWrapsStoreFailure(t *testing.T) {
	st := newFakeStore()
	st.listErr = errors.New("connection reset")
	svc := NewAdminService(st, auth.NewAdmins([]string{"admin@memoir.example"}))

	_, err := svc.ListAll(context.Background(), &auth.Identity{Email: "admin@memoir.example"})
	require.Error(t, err)
	assert.True(t, story.IsExternalServiceError(err))
}
