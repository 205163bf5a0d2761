package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emigue/backend/internal/app/models"
	"github.com/emigue/backend/internal/app/models/dto"
	"github.com/emigue/backend/internal/pkg/apperrors"
)

// stubUserService returns canned results per operation.
type stubUserService struct {
	registerResp *dto.AuthResponse
	registerErr  error
	loginResp    *dto.AuthResponse
	loginErr     error
	profile      *models.UserInfo
	profileErr   error
	updateResp   *models.UserInfo
	updateErr    error
	passwordErr  error
	deleteErr    error
}

func (s *stubUserService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubUserService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubUserService) GetProfile(_ context.Context, _ int64) (*models.UserInfo, error) {
	return s.profile, s.profileErr
}

func (s *stubUserService) UpdateProfile(_ context.Context, _ int64, _ *dto.UpdateUserRequest) (*models.UserInfo, error) {
	return s.updateResp, s.updateErr
}

func (s *stubUserService) ChangePassword(_ context.Context, _ int64, _ *dto.PasswordUpdateRequest) error {
	return s.passwordErr
}

func (s *stubUserService) DeleteUser(_ context.Context, _ int64) error {
	return s.deleteErr
}

func newUserRouter(svc *stubUserService) *gin.Engine {
	c := NewUserController(svc)
	router := gin.New()
	api := router.Group("/api")
	api.POST("/user", c.Login)
	api.POST("/user/register", c.Register)
	api.GET("/user/:id", c.GetUser)
	api.PUT("/user/:id", c.UpdateUser)
	api.PUT("/user/:id/password", c.UpdatePassword)
	api.DELETE("/user/:id", c.DeleteUser)
	return router
}

func TestLoginSuccess(t *testing.T) {
	router := newUserRouter(&stubUserService{
		loginResp: &dto.AuthResponse{UserID: 7, IsAdmin: true, Token: "jwt-token"},
	})

	w := performRequest(t, router, http.MethodPost, "/api/user",
		`{"email":"admin@email.com","password":"admin"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"is_admin":true,"token":"jwt-token"}`, w.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newUserRouter(&stubUserService{loginErr: apperrors.ErrInvalidCredentials})

	w := performRequest(t, router, http.MethodPost, "/api/user",
		`{"email":"admin@email.com","password":"wrong"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "email or password invalid", resp.Error.Message)
}

func TestLoginMissingFields(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := performRequest(t, router, http.MethodPost, "/api/user", `{"email":"a@b.c"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterSuccess(t *testing.T) {
	router := newUserRouter(&stubUserService{
		registerResp: &dto.AuthResponse{UserID: 12, IsAdmin: false, Token: "jwt-token"},
	})

	w := performRequest(t, router, http.MethodPost, "/api/user/register",
		`{"email":"ruan@email.com","nome":"Ruan Petrus","matricula":"211010459","curso":"CIC","password":"1234"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"user_id":12,"is_admin":false,"token":"jwt-token"}`, w.Body.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newUserRouter(&stubUserService{registerErr: apperrors.ErrEmailAlreadyExists})

	w := performRequest(t, router, http.MethodPost, "/api/user/register",
		`{"email":"ruan@email.com","nome":"Ruan Petrus","matricula":"211010459","curso":"CIC","password":"1234"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "fail to register user", resp.Error.Message)
}

func TestGetUserNotFound(t *testing.T) {
	router := newUserRouter(&stubUserService{profileErr: apperrors.ErrUserNotFound})

	w := performRequest(t, router, http.MethodGet, "/api/user/99", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "User not found", resp.Error.Message)
}

func TestGetUserInvalidID(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := performRequest(t, router, http.MethodGet, "/api/user/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePasswordSuccess(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := performRequest(t, router, http.MethodPut, "/api/user/3/password",
		`{"current_password":"old","new_password":"new-password"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "password update sucessful", decodeMessageResponse(t, w).Message)
}

func TestUpdatePasswordMismatch(t *testing.T) {
	router := newUserRouter(&stubUserService{passwordErr: apperrors.ErrPasswordMismatch})

	w := performRequest(t, router, http.MethodPut, "/api/user/3/password",
		`{"current_password":"wrong","new_password":"new-password"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Password fail to update", resp.Error.Message)
}

func TestUpdatePasswordUnknownUser(t *testing.T) {
	// A missing user reports the same outcome as a wrong password.
	router := newUserRouter(&stubUserService{passwordErr: apperrors.ErrUserNotFound})

	w := performRequest(t, router, http.MethodPut, "/api/user/99/password",
		`{"current_password":"old","new_password":"new-password"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Password fail to update", resp.Error.Message)
}

func TestDeleteUserSuccess(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w := performRequest(t, router, http.MethodDelete, "/api/user/3", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted sucessfully", decodeMessageResponse(t, w).Message)
}

func TestDeleteUserNotFound(t *testing.T) {
	router := newUserRouter(&stubUserService{deleteErr: apperrors.ErrUserNotFound})

	w := performRequest(t, router, http.MethodDelete, "/api/user/99", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, "Fail to delete user", resp.Error.Message)
}
