package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pantry/internal/delivery/api/middleware"
	"pantry/internal/delivery/api/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Logger        *slog.Logger
}

// TransactionHandler exposes the reservation engine over HTTP
type TransactionHandler struct {
	reservationUC usecase.ReservationUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		reservationUC: params.ReservationUC,
		logger:        params.Logger,
	}
}

// ReserveRequest represents the request body for reserving an offer
type ReserveRequest struct {
	OfferID string `json:"offer_id" validate:"required,uuid"`
}

// CollectByQRRequest represents the request body for collecting with a scanned pickup code
type CollectByQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// Reserve handles claiming an available offer
func (h *TransactionHandler) Reserve(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	var req ReserveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tx, err := h.reservationUC.Reserve(c.Request().Context(), uuid.MustParse(req.OfferID), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTransactionResponse(tx))
}

// Collect handles marking a reservation as collected
func (h *TransactionHandler) Collect(c echo.Context) error {
	return h.transition(c, h.reservationUC.Collect)
}

// Cancel handles cancelling a reservation
func (h *TransactionHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.reservationUC.Cancel)
}

type transitionFunc func(ctx context.Context, transactionID, requesterID uuid.UUID) (*entity.Transaction, error)

func (h *TransactionHandler) transition(c echo.Context, apply transitionFunc) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid transaction ID")
	}

	tx, err := apply(c.Request().Context(), transactionID, actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}

// CollectByQR handles collecting with the payload of a scanned pickup code
func (h *TransactionHandler) CollectByQR(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	var req CollectByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	tx, err := h.reservationUC.CollectByQR(c.Request().Context(), req.QRData, actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}

// GetTransaction handles retrieving a transaction visible to the caller
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid transaction ID")
	}

	tx, err := h.reservationUC.GetTransaction(c.Request().Context(), transactionID, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}

// PickupQR handles rendering the pickup QR code of a reservation as PNG
func (h *TransactionHandler) PickupQR(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid transaction ID")
	}

	png, err := h.reservationUC.PickupQR(c.Request().Context(), transactionID, actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMine handles listing the caller's transactions
func (h *TransactionHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	txs, err := h.reservationUC.ListMine(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(txs, newTransactionResponse))
}

// History handles listing the transactions of a user, for that user or an admin
func (h *TransactionHandler) History(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	txs, err := h.reservationUC.History(c.Request().Context(), userID, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(txs, newTransactionResponse))
}

// ForceCancel handles an admin cancelling any reserved or collected transaction
func (h *TransactionHandler) ForceCancel(c echo.Context) error {
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid transaction ID")
	}

	tx, err := h.reservationUC.AdminForceCancel(c.Request().Context(), transactionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}
