package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"organic/internal/delivery/http/response"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WebhookHandler holds dependencies for identity provider webhook handlers.
type WebhookHandler struct {
	uc       usecase.UserUsecase
	verifier service.WebhookVerifier
	logger   *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.UserUsecase, verifier service.WebhookVerifier, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc:       uc,
		verifier: verifier,
		logger:   logger,
	}
}

// clerkEvent mirrors the identity provider's webhook envelope for the user
// lifecycle events.
type clerkEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PhoneNumbers []struct {
			PhoneNumber string `json:"phone_number"`
		} `json:"phone_numbers"`
	} `json:"data"`
}

// HandleClerkWebhook verifies and dispatches a user lifecycle delivery. The
// signature is checked over the raw body before anything else happens.
func (h *WebhookHandler) HandleClerkWebhook(c echo.Context) error {
	if h.verifier == nil {
		return errors.WithStack(domainerrors.ErrWebhookNotConfigured)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Unable to read webhook payload")
	}

	headers := c.Request().Header
	if err := h.verifier.Verify(
		payload,
		headers.Get("svix-id"),
		headers.Get("svix-timestamp"),
		headers.Get("svix-signature"),
	); err != nil {
		h.logger.Warn("Webhook signature rejected", slog.String("error", err.Error()))

		return errors.WithStack(err)
	}

	var event clerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	ctx := c.Request().Context()

	switch event.Type {
	case "user.created", "user.updated":
		input := usecase.WebhookUserInput{
			ClerkID:   event.Data.ID,
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
			ImageURL:  event.Data.ImageURL,
		}
		if len(event.Data.EmailAddresses) > 0 {
			input.Email = event.Data.EmailAddresses[0].EmailAddress
		}
		if len(event.Data.PhoneNumbers) > 0 {
			input.Phone = event.Data.PhoneNumbers[0].PhoneNumber
		}

		if _, err := h.uc.UpsertUser(ctx, input); err != nil {
			return errors.WithStack(err)
		}
	case "user.deleted":
		if err := h.uc.DeleteUser(ctx, event.Data.ID); err != nil {
			return errors.WithStack(err)
		}
	default:
		h.logger.Info("Ignoring unhandled webhook event", slog.String("type", event.Type))
	}

	return response.Success(c, http.StatusOK, map[string]string{"received": event.Type}, "Webhook processed")
}
