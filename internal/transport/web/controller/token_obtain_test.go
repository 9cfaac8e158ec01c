package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/recipe-hub-backend/internal/auth"
	"github.com/recipehub/recipe-hub-backend/internal/datasources/mocks"
	"github.com/recipehub/recipe-hub-backend/internal/domain"
)

func testIssuer() *auth.TokenIssuer {
	return &auth.TokenIssuer{
		SigningKey: []byte("test-signing-key"),
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestTokenObtain_ServeHTTP(t *testing.T) {
	hash, err := auth.HashPassword("Kitchen5")
	require.NoError(t, err)

	user := domain.User{ID: 7, Username: "cook", PasswordHash: hash}

	doRequest := func(ctrl TokenObtain, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/token/", strings.NewReader(body))
		req = testContext()(req)
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)
		return rec
	}

	t.Run("issues_token_pair", func(t *testing.T) {
		users := &mocks.MockUserByUsernameGetter{}
		users.On("GetUserByUsername", mock.Anything, "cook").Return(user, nil)

		issuer := testIssuer()
		rec := doRequest(TokenObtain{Users: users, Issuer: issuer}, `{"username": "cook", "password": "Kitchen5"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var pair auth.TokenPair
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&pair))

		userID, err := issuer.Parse(pair.Access, auth.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)

		userID, err = issuer.Parse(pair.Refresh, auth.TokenTypeRefresh)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		users := &mocks.MockUserByUsernameGetter{}
		users.On("GetUserByUsername", mock.Anything, "cook").Return(user, nil)

		rec := doRequest(TokenObtain{Users: users, Issuer: testIssuer()}, `{"username": "cook", "password": "wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body detailBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "No active account found with the given credentials", body.Detail)
	})

	t.Run("unknown_username", func(t *testing.T) {
		users := &mocks.MockUserByUsernameGetter{}
		users.On("GetUserByUsername", mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound)

		rec := doRequest(TokenObtain{Users: users, Issuer: testIssuer()}, `{"username": "ghost", "password": "Kitchen5"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTokenRefresh_ServeHTTP(t *testing.T) {
	doRequest := func(ctrl TokenRefresh, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/token/refresh/", strings.NewReader(body))
		req = testContext()(req)
		rec := httptest.NewRecorder()
		ctrl.ServeHTTP(rec, req)
		return rec
	}

	t.Run("refreshes_access_token", func(t *testing.T) {
		issuer := testIssuer()
		refresh, err := issuer.IssueToken(7, auth.TokenTypeRefresh)
		require.NoError(t, err)

		rec := doRequest(TokenRefresh{Issuer: issuer}, `{"refresh": "`+refresh+`"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body accessBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

		userID, err := issuer.Parse(body.Access, auth.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("access_token_not_accepted_as_refresh", func(t *testing.T) {
		issuer := testIssuer()
		access, err := issuer.IssueToken(7, auth.TokenTypeAccess)
		require.NoError(t, err)

		rec := doRequest(TokenRefresh{Issuer: issuer}, `{"refresh": "`+access+`"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage_token", func(t *testing.T) {
		rec := doRequest(TokenRefresh{Issuer: testIssuer()}, `{"refresh": "not-a-token"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
