package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/handler"
)

func TestRegister_201(t *testing.T) {
	var got domain.Registration
	svc := &mockAuth{
		register: func(_ context.Context, reg domain.Registration) (domain.User, error) {
			got = reg
			name := reg.FullName
			return domain.User{ID: 3, Email: reg.Email, Username: reg.Username, FullName: &name, HashedPassword: "secret-hash"}, nil
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Auth: svc}), http.MethodPost, "/api/auth/register", map[string]any{
		"email": "bob@example.com", "username": "bob", "password": "hunter22", "full_name": "Bob B",
	}, false)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.Registration{Email: "bob@example.com", Username: "bob", Password: "hunter22", FullName: "Bob B"}, got)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	resp := decode[handler.UserResponse](t, rec)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "bob", resp.Username)
}

func TestRegister_422(t *testing.T) {
	cases := map[string]map[string]any{
		"bad email":      {"email": "not-an-email", "username": "bob", "password": "hunter22"},
		"short password": {"email": "bob@example.com", "username": "bob", "password": "abc"},
		"no username":    {"email": "bob@example.com", "password": "hunter22"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, newHTTPHandler(handler.Services{Auth: &mockAuth{}}), http.MethodPost, "/api/auth/register", body, false)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestRegister_409(t *testing.T) {
	svc := &mockAuth{
		register: func(context.Context, domain.Registration) (domain.User, error) {
			return domain.User{}, fmt.Errorf("service.AuthService.Register: %w: email already registered", domain.ErrConflict)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Auth: svc}), http.MethodPost, "/api/auth/register", map[string]any{
		"email": "bob@example.com", "username": "bob", "password": "hunter22",
	}, false)

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "conflict", resp.Error.Code)
	assert.Equal(t, "email already registered", resp.Error.Message)
}

func TestLogin_FormAndJSON(t *testing.T) {
	var gotLogin, gotPassword string
	svc := &mockAuth{
		login: func(_ context.Context, login, password string) (string, error) {
			gotLogin, gotPassword = login, password
			return "signed.jwt.token", nil
		},
	}
	h := newHTTPHandler(handler.Services{Auth: svc})

	form := url.Values{"username": {"alice@example.com"}, "password": {"hunter22"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", gotLogin)
	assert.Equal(t, "hunter22", gotPassword)
	assert.JSONEq(t, `{"access_token":"signed.jwt.token","token_type":"bearer"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/auth/login", map[string]any{"username": "alice", "password": "pw"}, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", gotLogin)
}

func TestLogin_422_MissingPassword(t *testing.T) {
	h := newHTTPHandler(handler.Services{Auth: &mockAuth{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("username=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[handler.ErrorResponse](t, rec).Error.Message, "password")
}

func TestLogin_401(t *testing.T) {
	svc := &mockAuth{
		login: func(context.Context, string, string) (string, error) {
			return "", fmt.Errorf("%w: incorrect username or password", domain.ErrUnauthorized)
		},
	}

	rec := do(t, newHTTPHandler(handler.Services{Auth: svc}), http.MethodPost, "/api/auth/login",
		map[string]any{"username": "alice", "password": "wrong"}, false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "incorrect username or password", decode[handler.ErrorResponse](t, rec).Error.Message)
}

func TestGetMe(t *testing.T) {
	rec := do(t, newHTTPHandler(handler.Services{Users: &mockUsers{}}), http.MethodGet, "/api/users/me", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[handler.UserResponse](t, rec)
	assert.Equal(t, testCaller.ID, resp.ID)
	assert.Equal(t, testCaller.Email, resp.Email)
}

func TestUpdateMe(t *testing.T) {
	cases := []struct {
		name string
		path string
		body any
		want domain.ProfileUpdate
	}{
		{
			name: "query string",
			path: "/api/users/me?full_name=Alice%20A&profile_photo=https://img/a.png",
			want: domain.ProfileUpdate{FullName: "Alice A", ProfilePhoto: "https://img/a.png"},
		},
		{
			name: "json body",
			path: "/api/users/me",
			body: map[string]any{"full_name": "Alice B"},
			want: domain.ProfileUpdate{FullName: "Alice B"},
		},
		{
			name: "nothing",
			path: "/api/users/me",
			want: domain.ProfileUpdate{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.ProfileUpdate
			svc := &mockUsers{
				updateSelf: func(_ context.Context, caller domain.User, upd domain.ProfileUpdate) (domain.User, error) {
					got = upd
					return caller, nil
				},
			}

			rec := do(t, newHTTPHandler(handler.Services{Users: svc}), http.MethodPut, tc.path, tc.body, true)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, got)
		})
	}
}
