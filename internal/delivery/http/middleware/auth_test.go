package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

type stubVerifier struct {
	userID string
	role   string
	err    error
}

func (s *stubVerifier) Verify(token string) (string, string, error) {
	return s.userID, s.role, s.err
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *stubVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			verifier:   &stubVerifier{userID: "u-1", role: domain.RoleVolunteer},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verification fails",
			header:     "Bearer bad-token",
			verifier:   &stubVerifier{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := RequireAuth(tt.verifier)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userID, ok := UserIDFromContext(r.Context())
				require.True(t, ok)
				require.Equal(t, "u-1", userID)
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestRequireRole(t *testing.T) {
	admitted := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	t.Run("matching role passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
		req = req.WithContext(SetIdentity(req.Context(), "u-1", domain.RoleAdmin))

		RequireRole(domain.RoleAdmin)(admitted)(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)
		req = req.WithContext(SetIdentity(req.Context(), "u-1", domain.RoleVolunteer))

		RequireRole(domain.RoleAdmin)(admitted)(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no identity is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", nil)

		RequireRole(domain.RoleAdmin)(admitted)(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}
