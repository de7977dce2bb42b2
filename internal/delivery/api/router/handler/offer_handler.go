package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pantry/internal/delivery/api/middleware"
	"pantry/internal/delivery/api/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer catalog handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for publishing an offer
type CreateOfferRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description"`
	Kind        string     `json:"kind" validate:"required,oneof=goods meals credits"`
	Quantity    int        `json:"quantity" validate:"gte=1"`
	Location    string     `json:"location" validate:"max=255"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// UpdateOfferRequest represents the request body for patching an offer
type UpdateOfferRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Quantity    *int       `json:"quantity" validate:"omitempty,gte=1"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// CreateOffer handles publishing an offer
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), actor, &usecase.CreateOfferInput{
		Title:       req.Title,
		Description: req.Description,
		Kind:        entity.OfferKind(req.Kind),
		Quantity:    req.Quantity,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOfferResponse(offer))
}

// GetOffer handles retrieving a single offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferResponse(offer))
}

// ListOffers handles browsing available offers, optionally around a point
func (h *OfferHandler) ListOffers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page and size must be integers")
	}

	input := &usecase.ListOffersInput{Page: page}

	if kind := c.QueryParam("kind"); kind != "" {
		offerKind := entity.OfferKind(kind)
		if !offerKind.IsValid() {
			return response.BadRequest(c, "VALIDATION_FAILED", "kind must be one of goods, meals, credits")
		}
		input.Kind = &offerKind
	}

	if c.QueryParam("lat") != "" || c.QueryParam("lon") != "" {
		near := &usecase.NearbyQuery{}
		if err := echo.QueryParamsBinder(c).
			MustFloat64("lat", &near.Latitude).
			MustFloat64("lon", &near.Longitude).
			MustFloat64("radius_m", &near.RadiusMeters).
			BindError(); err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "lat, lon and radius_m must be given together as numbers")
		}
		input.Near = near
	}

	offers, err := h.offerUC.ListAvailable(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapPage(offers, newOfferResponse))
}

// UpdateOffer handles patching an offer by its creator or an admin
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req UpdateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), offerID, &entity.OfferPatch{
		Title:       req.Title,
		Description: req.Description,
		Quantity:    req.Quantity,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ExpiresAt:   req.ExpiresAt,
	}, actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOfferResponse(offer))
}

// DeleteOffer handles removing an offer by its creator or an admin
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	if err := h.offerUC.DeleteOffer(c.Request().Context(), offerID, actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Offer deleted successfully"})
}
