package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/middleware"
	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
	"github.com/harentsoaR/contact-directory/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock services ──

type mockContactService struct {
	createID  string
	contacts  []models.Contact
	err       error
	gotID     string
	gotPhone  string
	gotCreate *dto.ContactRequest
}

func (m *mockContactService) Create(_ context.Context, req *dto.ContactRequest) (string, error) {
	m.gotCreate = req
	return m.createID, m.err
}

func (m *mockContactService) Update(_ context.Context, id string, _ *dto.ContactRequest) error {
	m.gotID = id
	return m.err
}

func (m *mockContactService) List(context.Context) ([]models.Contact, error) {
	return m.contacts, m.err
}

func (m *mockContactService) Delete(_ context.Context, phone string) (int64, error) {
	m.gotPhone = phone
	return 1, m.err
}

type mockAuthService struct {
	user  *dto.UserResponse
	login *dto.LoginResponse
	err   error
}

func (m *mockAuthService) Register(context.Context, *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.user, m.err
}

func (m *mockAuthService) Login(context.Context, *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.login, m.err
}

type mockStore struct {
	pingErr error
}

func (s *mockStore) Contacts() repository.ContactRepository { return nil }
func (s *mockStore) Users() repository.UserRepository       { return nil }
func (s *mockStore) Ping(context.Context) error             { return s.pingErr }
func (s *mockStore) Close(context.Context) error            { return nil }

// ── Helpers ──

func newTestRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.POST("/register", h.RegisterUser)
	r.POST("/login", h.Login)
	r.POST("/contact", h.CreateContact)
	r.GET("/contact", h.ListContacts)
	r.PUT("/contact/:id", h.UpdateContact)
	r.DELETE("/contact/:phone", h.DeleteContact)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

const validContact = `{"name":"Ana","email":"a@x.io","phone":"555","address":"1 St","department":"CS"}`

// ── Contacts ──

func TestCreateContact(t *testing.T) {
	svc := &mockContactService{createID: "c-1"}
	r := newTestRouter(&Handler{ContactSvc: svc})

	w := doRequest(r, http.MethodPost, "/contact", validContact)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ContactCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Contact added", resp.Message)
	assert.Equal(t, "c-1", resp.ID)
	assert.Equal(t, "Ana", svc.gotCreate.Name)
}

func TestCreateContact_MalformedJSON(t *testing.T) {
	r := newTestRouter(&Handler{ContactSvc: &mockContactService{}})

	w := doRequest(r, http.MethodPost, "/contact", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields.", decodeMessage(t, w))
}

func TestCreateContact_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("Missing required fields."), http.StatusBadRequest, "Missing required fields."},
		{"storage", apperr.Storage("Failed to add contact", errors.New("pq: disk full")), http.StatusInternalServerError, "Failed to add contact"},
		{"unexpected", errors.New("raw driver error"), http.StatusInternalServerError, "Failed to add contact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&Handler{ContactSvc: &mockContactService{err: tt.err}})

			w := doRequest(r, http.MethodPost, "/contact", validContact)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
			assert.NotContains(t, w.Body.String(), "disk full")
			assert.NotContains(t, w.Body.String(), "raw driver error")
		})
	}
}

func TestUpdateContact(t *testing.T) {
	svc := &mockContactService{}
	r := newTestRouter(&Handler{ContactSvc: svc})

	w := doRequest(r, http.MethodPut, "/contact/abc", validContact)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Contact updated", decodeMessage(t, w))
	assert.Equal(t, "abc", svc.gotID)
}

func TestUpdateContact_NotFound(t *testing.T) {
	r := newTestRouter(&Handler{ContactSvc: &mockContactService{err: apperr.NotFound("Contact not found")}})

	w := doRequest(r, http.MethodPut, "/contact/missing", validContact)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact not found", decodeMessage(t, w))
}

func TestListContacts(t *testing.T) {
	svc := &mockContactService{contacts: []models.Contact{{ID: "1", Name: "Ana", Phone: "555"}}}
	r := newTestRouter(&Handler{ContactSvc: svc})

	w := doRequest(r, http.MethodGet, "/contact", "")

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestListContacts_Empty(t *testing.T) {
	r := newTestRouter(&Handler{ContactSvc: &mockContactService{contacts: []models.Contact{}}})

	w := doRequest(r, http.MethodGet, "/contact", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListContacts_StorageError(t *testing.T) {
	r := newTestRouter(&Handler{ContactSvc: &mockContactService{err: errors.New("connection reset")}})

	w := doRequest(r, http.MethodGet, "/contact", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to retrieve contacts", decodeMessage(t, w))
}

func TestDeleteContact(t *testing.T) {
	svc := &mockContactService{}
	r := newTestRouter(&Handler{ContactSvc: svc})

	w := doRequest(r, http.MethodDelete, "/contact/555", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Contact deleted successfully", decodeMessage(t, w))
	assert.Equal(t, "555", svc.gotPhone)
}

func TestDeleteContact_Errors(t *testing.T) {
	r := newTestRouter(&Handler{ContactSvc: &mockContactService{err: apperr.NotFound("Contact not found")}})
	w := doRequest(r, http.MethodDelete, "/contact/000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Contact not found", decodeMessage(t, w))

	r = newTestRouter(&Handler{ContactSvc: &mockContactService{err: errors.New("boom")}})
	w = doRequest(r, http.MethodDelete, "/contact/555", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error deleting contact", decodeMessage(t, w))
}

// ── Auth ──

func TestRegisterUser(t *testing.T) {
	svc := &mockAuthService{user: &dto.UserResponse{Phone: "555", Role: "user"}}
	r := newTestRouter(&Handler{AuthSvc: svc})

	w := doRequest(r, http.MethodPost, "/register", `{"phone":"555","password":"pw1","role":"user"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"phone":"555","role":"user"}`, w.Body.String())
}

func TestRegisterUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"malformed", `not json`, nil, http.StatusBadRequest, "Missing required fields."},
		{"duplicate", `{"phone":"555","password":"pw","role":"user"}`, apperr.Conflict("User already exists"), http.StatusBadRequest, "User already exists"},
		{"store down", `{"phone":"555","password":"pw","role":"user"}`, errors.New("dial tcp"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&Handler{AuthSvc: &mockAuthService{err: tt.err}})

			w := doRequest(r, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestLogin(t *testing.T) {
	svc := &mockAuthService{login: &dto.LoginResponse{
		Message: "Login successful",
		Token:   "tok",
		User:    dto.UserResponse{Phone: "555", Role: "user"},
	}}
	r := newTestRouter(&Handler{AuthSvc: svc})

	w := doRequest(r, http.MethodPost, "/login", `{"phone":"555","password":"pw1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "555", resp.User.Phone)
}

func TestLogin_Errors(t *testing.T) {
	r := newTestRouter(&Handler{AuthSvc: &mockAuthService{}})
	w := doRequest(r, http.MethodPost, "/login", `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing phone or password.", decodeMessage(t, w))

	r = newTestRouter(&Handler{AuthSvc: &mockAuthService{err: apperr.Authentication("Invalid phone or password")}})
	w = doRequest(r, http.MethodPost, "/login", `{"phone":"555","password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid phone or password", decodeMessage(t, w))
}

func TestGetCurrentUser(t *testing.T) {
	tokens, err := utils.NewTokenIssuer("handler-test-secret-0123456789", time.Hour)
	require.NoError(t, err)
	token, err := tokens.GenerateJWT("555", "admin")
	require.NoError(t, err)

	h := &Handler{}
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(tokens), h.GetCurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "555", resp.Phone)
	assert.Equal(t, "admin", resp.Role)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestGetCurrentUser_WithoutMiddleware(t *testing.T) {
	h := &Handler{}
	r := gin.New()
	r.GET("/me", h.GetCurrentUser)

	w := doRequest(r, http.MethodGet, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User not authenticated", decodeMessage(t, w))
}

// ── Health ──

func TestHealth(t *testing.T) {
	r := newTestRouter(&Handler{Store: &mockStore{}})
	w := doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	r = newTestRouter(&Handler{Store: &mockStore{pingErr: errors.New("no route to host")}})
	w = doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
}
