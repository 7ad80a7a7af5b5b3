package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	token, err := svc.Register("Ana", "ana@example.com", "password123", "Cervejaria Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)

	loginToken, err := svc.Login("ana@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Ana", "ana@example.com", "password123", "")
	require.NoError(t, err)

	_, err = svc.Register("Other Ana", "ana@example.com", "different", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register("Ana", "ana@example.com", "password123", "")
	require.NoError(t, err)

	_, err = svc.Login("ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RejectsForgedToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "another-secret")

	token, err := svc.Register("Ana", "ana@example.com", "password123", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
