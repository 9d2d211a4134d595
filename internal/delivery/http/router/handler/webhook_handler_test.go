package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"organic/config"
	"organic/internal/delivery/http/middleware"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/service"
	mockRepo "organic/internal/mocks/repository"
	mockSvc "organic/internal/mocks/service"
	"organic/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newWebhookTestServer wires the webhook route against a real user service
// backed by mocked repositories, with the production error handler installed.
func newWebhookTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockWebhookVerifier, *mockRepo.MockUserRepository) {
	t.Helper()

	logger := discardLogger()

	cache := mockSvc.NewMockQueryCache(t)
	cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrCacheMiss).Maybe()
	cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	userRepo := mockRepo.NewMockUserRepository(t)
	uc := impl.NewUserService(impl.UserServiceParams{
		UserRepo: userRepo,
		Cache:    cache,
		Registry: querykey.NewRegistry(),
		Config:   &config.Config{},
		Logger:   logger,
	})

	verifier := mockSvc.NewMockWebhookVerifier(t)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/webhooks/clerk", NewWebhookHandler(uc, verifier, logger).HandleClerkWebhook)

	return e, verifier, userRepo
}

func postWebhook(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/clerk", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", "1700000000")
	req.Header.Set("svix-signature", "v1,deadbeef")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHandleClerkWebhook_RejectsBadSignature(t *testing.T) {
	e, verifier, userRepo := newWebhookTestServer(t)

	verifier.EXPECT().
		Verify(mock.Anything, "msg_1", "1700000000", "v1,deadbeef").
		Return(domainerrors.ErrWebhookSignature)

	rec := postWebhook(e, `{"type":"user.created","data":{"id":"user_1"}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "WEBHOOK_SIGNATURE_INVALID")
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestHandleClerkWebhook_UserCreated(t *testing.T) {
	e, verifier, userRepo := newWebhookTestServer(t)

	verifier.EXPECT().
		Verify(mock.Anything, "msg_1", "1700000000", "v1,deadbeef").
		Return(nil)
	userRepo.EXPECT().
		FindUserByClerkID(mock.Anything, "user_1").
		Return(nil, domainerrors.ErrUserNotFound)
	userRepo.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Return(nil)

	rec := postWebhook(e, `{
		"type": "user.created",
		"data": {
			"id": "user_1",
			"first_name": "Ada",
			"last_name": "Lovelace",
			"email_addresses": [{"email_address": "ada@example.com"}]
		}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user.created")
}

func TestHandleClerkWebhook_UserDeleted(t *testing.T) {
	e, verifier, userRepo := newWebhookTestServer(t)

	verifier.EXPECT().
		Verify(mock.Anything, "msg_1", "1700000000", "v1,deadbeef").
		Return(nil)
	userRepo.EXPECT().
		DeleteUserByClerkID(mock.Anything, "user_1").
		Return(nil)

	rec := postWebhook(e, `{"type":"user.deleted","data":{"id":"user_1"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user.deleted")
}

func TestHandleClerkWebhook_IgnoresUnknownEvent(t *testing.T) {
	e, verifier, userRepo := newWebhookTestServer(t)

	verifier.EXPECT().
		Verify(mock.Anything, "msg_1", "1700000000", "v1,deadbeef").
		Return(nil)

	rec := postWebhook(e, `{"type":"session.created","data":{"id":"sess_1"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "DeleteUserByClerkID", mock.Anything, mock.Anything)
}

func TestHandleClerkWebhook_MissingVerifier(t *testing.T) {
	logger := discardLogger()

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/api/webhooks/clerk", NewWebhookHandler(nil, nil, logger).HandleClerkWebhook)

	rec := postWebhook(e, `{"type":"user.created","data":{"id":"user_1"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "WEBHOOK_NOT_CONFIGURED")
}
