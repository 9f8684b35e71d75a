package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.Issue("u-1", "admin", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", userID)
	require.Equal(t, domain.RoleAdmin, role)
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").Issue("u-1", "admin", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, _, err = NewJWTManager("secret-b").Verify(token)
	require.Error(t, err)
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret")

	token, err := manager.Issue("u-1", "admin", domain.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, _, err = manager.Verify(token)
	require.Error(t, err)
}

func TestJWTManager_Verify_Garbage(t *testing.T) {
	_, _, err := NewJWTManager("test-secret").Verify("not.a.token")
	require.Error(t, err)
}
