//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/dto/request"
	"smartpark/tests/common/authtest"
	"smartpark/tests/common/dbtest"
	"smartpark/tests/common/httptest"
	"smartpark/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/v1/auth/login"
	refreshURL = "/api/v1/auth/refresh"
	meURL      = "/api/v1/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: valid credentials return tokens and cookies", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "operator1", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.NotEmpty(t, body["access_token"])
		require.NotEmpty(t, body["refresh_token"])
		require.NotContains(t, w.Body.String(), "password")

		require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
		require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "operator1", Password: "wrongpassword"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: unknown username is rejected with the same status", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "nobody", Password: "password123"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: deactivated account cannot log in", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "operator1", string(user.RoleOperator))
		_, err := s.DB.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "operator1", Password: "password123"}, "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: refresh cookie yields a new token pair", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "operator1", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL,
			nil, []*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var body map[string]any
		httptest.DecodeResponseBody(t, rw.Body, &body)
		require.NotEmpty(t, body["access_token"])
	})

	s.Run("Error case: an access token is not accepted as refresh token", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: token}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage refresh token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "not-a-jwt"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: returns the authenticated account", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Equal(t, "operator1", body["username"])
		require.Equal(t, "operator", body["role"])
	})

	s.Run("Error case: missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestRoleEnforcement() {
	s.Run("Error case: operator cannot manage accounts", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/users", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: admin can manage accounts and slots", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "admin1", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/v1/users", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/slots",
			map[string]any{"label": "A01"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: operator cannot create slots", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "operator1", string(user.RoleOperator))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/v1/slots",
			map[string]any{"label": "A01"}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
