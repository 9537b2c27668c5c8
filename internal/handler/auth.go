package handler

import (
	"mime"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/middleware"
)

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Username string              `json:"username" validate:"required,max=50"`
	Password string              `json:"password" validate:"required,min=6,max=72"`
	FullName *string             `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest is the JSON form of POST /api/auth/login. Username may also
// hold the account's email.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the server.
type UserResponse struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FullName     *string   `json:"full_name"`
	ProfilePhoto *string   `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
}

// Register handles POST /api/auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	reg := domain.Registration{
		Email:    string(req.Email),
		Username: req.Username,
		Password: req.Password,
	}
	if req.FullName != nil {
		reg.FullName = *req.FullName
	}

	u, err := s.Auth.Register(r.Context(), reg)
	if err != nil {
		s.fail(w, r, err, "user not found")
		return
	}
	writeJSON(w, http.StatusCreated, userToResponse(u))
}

// Login handles POST /api/auth/login. It accepts the OAuth2 password-flow
// urlencoded form as well as a JSON body.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			rejectBody(w, err)
			return
		}
		req = LoginRequest{Username: r.PostForm.Get("username"), Password: r.PostForm.Get("password")}
		if err := s.validate.Struct(req); err != nil {
			requestError(w, validationMessage(err).Error())
			return
		}
	} else if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	token, err := s.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(w, r, err, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GetMe handles GET /api/users/me.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(s.Users.GetSelf(r.Context(), caller)))
}

// UpdateMe handles PUT /api/users/me. full_name and profile_photo are read
// from the query string, or from a JSON body when one is sent.
func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	var fullName, photo *string
	if err := queryParam(r, "full_name", &fullName); err != nil {
		requestError(w, err.Error())
		return
	}
	if err := queryParam(r, "profile_photo", &photo); err != nil {
		requestError(w, err.Error())
		return
	}
	upd := struct {
		FullName     string `json:"full_name" validate:"max=100"`
		ProfilePhoto string `json:"profile_photo" validate:"max=2048"`
	}{deref(fullName), deref(photo)}
	if r.ContentLength != 0 && isJSON(r) {
		if err := s.decodeJSON(r, &upd); err != nil {
			rejectBody(w, err)
			return
		}
	} else if err := s.validate.Struct(upd); err != nil {
		requestError(w, validationMessage(err).Error())
		return
	}

	u, err := s.Users.UpdateSelf(r.Context(), caller, domain.ProfileUpdate{
		FullName:     upd.FullName,
		ProfilePhoto: upd.ProfilePhoto,
	})
	if err != nil {
		s.fail(w, r, err, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(u))
}

// caller returns the authenticated user, answering 401 when the request
// reached an authenticated route without one.
func (s *Server) caller(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return domain.User{}, false
	}
	return u, true
}

func isForm(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/x-www-form-urlencoded"
}

func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FullName:     u.FullName,
		ProfilePhoto: u.ProfilePhoto,
		CreatedAt:    u.CreatedAt,
	}
}
