package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/port/mocks"
)

func TestAuthService_StoreErrors(t *testing.T) {
	errDB := errors.New("database is locked")

	t.Run("login surfaces lookup failures", func(t *testing.T) {
		store := mocks.NewUserStoreMock(t)
		store.EXPECT().GetUserByEmail(mock.Anything, "ann@example.com").Return(nil, errDB).Once()

		_, _, err := NewAuthService(store, testSecret, time.Hour).Login(context.Background(), " Ann@Example.com ", "whatever")
		assert.ErrorIs(t, err, errDB)
		assert.NotErrorIs(t, err, ErrInvalidCreds)
	})

	t.Run("register does not create after a failed lookup", func(t *testing.T) {
		store := mocks.NewUserStoreMock(t)
		store.EXPECT().GetUserByEmail(mock.Anything, "ann@example.com").Return(nil, errDB).Once()

		_, err := NewAuthService(store, testSecret, time.Hour).Register(context.Background(), "Ann", "ann@example.com", "Str0ng!Pass")
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("delete forwards not found", func(t *testing.T) {
		store := mocks.NewUserStoreMock(t)
		store.EXPECT().DeleteUser(mock.Anything, "u2").Return(domain.ErrNotFound).Once()

		err := NewAuthService(store, testSecret, time.Hour).DeleteUser(context.Background(), "u1", "u2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("self delete never reaches the store", func(t *testing.T) {
		store := mocks.NewUserStoreMock(t)

		err := NewAuthService(store, testSecret, time.Hour).DeleteUser(context.Background(), "u1", "u1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
