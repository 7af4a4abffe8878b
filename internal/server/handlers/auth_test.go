package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/pkg/api"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		result     auth.Result
		err        error
		wantStatus int
		wantKind   string
		wantCalls  int
	}{
		{
			name:       "success",
			body:       api.CredentialsRequest{Username: "alice", Password: "secret"},
			result:     auth.Success{UserID: 42, Username: "alice"},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name: "invalid password",
			body: api.CredentialsRequest{Username: "alice", Password: "wrong"},
			result: auth.Failure{Err: &auth.Error{
				Kind:    auth.KindInvalidCredentials,
				Message: auth.MessageInvalidPassword,
			}},
			wantStatus: http.StatusUnauthorized,
			wantKind:   "invalid_credentials",
			wantCalls:  1,
		},
		{
			name: "validation failure",
			body: api.CredentialsRequest{Username: "", Password: "secret"},
			result: auth.Failure{Err: &auth.Error{
				Kind:    auth.KindValidation,
				Message: "Username is empty",
			}},
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantCalls:  1,
		},
		{
			name:       "storage error",
			body:       api.CredentialsRequest{Username: "alice", Password: "secret"},
			err:        errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","password":"secret","admin":true}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &AuthServiceMock{
				LoginFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
					return tt.result, tt.err
				},
			}
			handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

			w := httptest.NewRecorder()
			handler.Login(w, newRequest(t, http.MethodPost, "/api/v1/auth/login", tt.body, 0))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Len(t, mock.LoginCalls(), tt.wantCalls)

			if tt.wantStatus == http.StatusOK {
				resp := decodeBody[api.AuthResponse](t, w)
				assert.Equal(t, int64(42), resp.UserID)
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, int64(900), resp.ExpiresIn)

				claims, err := ValidateAccessToken(testJWTConfig(), resp.AccessToken)
				require.NoError(t, err)
				id, err := claims.UserID()
				require.NoError(t, err)
				assert.Equal(t, int64(42), id)
				assert.Equal(t, "alice", claims.Username)
				return
			}

			resp := decodeBody[api.ErrorResponse](t, w)
			assert.Equal(t, tt.wantKind, resp.Kind)
			if failure, ok := tt.result.(auth.Failure); ok {
				assert.Equal(t, failure.Err.Message, resp.Message)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mock := &AuthServiceMock{
			RegisterFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return auth.Success{UserID: 1, Username: username}, nil
			},
		}
		handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

		w := httptest.NewRecorder()
		handler.Register(w, newRequest(t, http.MethodPost, "/api/v1/auth/register",
			api.CredentialsRequest{Username: "bob", Password: "secret"}, 0))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody[api.AuthResponse](t, w)
		assert.Equal(t, "bob", resp.Username)
		assert.NotEmpty(t, resp.AccessToken)

		require.Len(t, mock.RegisterCalls(), 1)
		assert.Equal(t, "bob", mock.RegisterCalls()[0].Username)
		assert.Equal(t, "secret", mock.RegisterCalls()[0].Password)
	})

	t.Run("conflict", func(t *testing.T) {
		mock := &AuthServiceMock{
			RegisterFunc: func(ctx context.Context, username, password string) (auth.Result, error) {
				return auth.Failure{Err: &auth.Error{Kind: auth.KindConflict, Message: auth.MessageUserExists}}, nil
			},
		}
		handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

		w := httptest.NewRecorder()
		handler.Register(w, newRequest(t, http.MethodPost, "/api/v1/auth/register",
			api.CredentialsRequest{Username: "bob", Password: "secret"}, 0))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeBody[api.ErrorResponse](t, w)
		assert.Equal(t, "conflict", resp.Kind)
		assert.Equal(t, auth.MessageUserExists, resp.Message)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("clears session", func(t *testing.T) {
		mock := &AuthServiceMock{
			LogoutFunc: func(ctx context.Context) error { return nil },
		}
		handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

		w := httptest.NewRecorder()
		handler.Logout(w, newRequest(t, http.MethodPost, "/api/v1/auth/logout", nil, 42))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Len(t, mock.LogoutCalls(), 1)
	})

	t.Run("anonymous", func(t *testing.T) {
		mock := &AuthServiceMock{}
		handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

		w := httptest.NewRecorder()
		handler.Logout(w, newRequest(t, http.MethodPost, "/api/v1/auth/logout", nil, 0))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, mock.LogoutCalls())
	})

	t.Run("storage error", func(t *testing.T) {
		mock := &AuthServiceMock{
			LogoutFunc: func(ctx context.Context) error { return errors.New("bolt closed") },
		}
		handler := NewAuthHandler(setupTestLogger(), mock, testJWTConfig())

		w := httptest.NewRecorder()
		handler.Logout(w, newRequest(t, http.MethodPost, "/api/v1/auth/logout", nil, 42))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, 7, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(cfg.AccessTokenTTL.Seconds()), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "tasktracker", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	other, _, err := GenerateAccessToken(cfg, 7, "bob")
	require.NoError(t, err)
	otherClaims, err := ValidateAccessToken(cfg, other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID, "every token gets its own jti")

	_, err = ValidateAccessToken(JWTConfig{Secret: []byte("different-secret-of-32-bytes-len")}, token)
	assert.Error(t, err)
}

func TestCustomClaims_UserID(t *testing.T) {
	tests := []struct {
		subject string
		want    int64
		wantErr bool
	}{
		{subject: "42", want: 42},
		{subject: "0", wantErr: true},
		{subject: "-1", wantErr: true},
		{subject: "alice", wantErr: true},
		{subject: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			c := &CustomClaims{}
			c.Subject = tt.subject
			got, err := c.UserID()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
