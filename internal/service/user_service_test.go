package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"itda/internal/cache"
	apperrors "itda/internal/errors"
	"itda/internal/model"
)

func TestUserService_GetUserIsCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "user-1").
		Return(&model.User{ID: "user-1", Name: "Kim", PasswordHash: "secret"}, nil).Once()
	svc := NewUserService(mockRepo, client)

	first, err := svc.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.GetUser(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Kim", first.Name)
	assert.Equal(t, "Kim", second.Name)
	assert.Empty(t, second.PasswordHash)
	assert.True(t, mr.Exists("user:user-1"))
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserWithoutCache(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)
	svc := NewUserService(mockRepo, nil)

	_, err := svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_RequestBrokerVerificationInvalidatesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })

	profile := model.BrokerProfile{LicenseNumber: "L-1", CompanyName: "Itda", Address: "Seoul"}
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, "user-1").
		Return(&model.User{ID: "user-1", Role: model.RoleMember}, nil).Once()
	mockRepo.On("SetBrokerProfile", mock.Anything, "user-1", profile).
		Return(&model.User{ID: "user-1", Role: model.RoleBroker, BrokerInfo: &profile}, nil)
	svc := NewUserService(mockRepo, client)

	_, err := svc.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists("user:user-1"))

	updated, err := svc.RequestBrokerVerification(context.Background(), "user-1", profile)
	require.NoError(t, err)
	assert.Equal(t, model.RoleBroker, updated.Role)
	assert.False(t, mr.Exists("user:user-1"))
	mockRepo.AssertExpectations(t)
}
