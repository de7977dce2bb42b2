package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pantry/internal/delivery/api/middleware"
	"pantry/internal/delivery/api/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for moderation handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateUserRequest represents the request body for changing an account
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=beneficiary donor partner admin"`
	IsActive *bool   `json:"is_active"`
}

// UserDetailsResponse is an account with its activity counts
type UserDetailsResponse struct {
	User  UserResponse     `json:"user"`
	Stats entity.UserStats `json:"stats"`
}

func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// ListUsers handles listing accounts filtered by role and active flag
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page and size must be integers")
	}

	var filter entity.UserFilter
	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return response.BadRequest(c, "VALIDATION_FAILED", "role must be one of beneficiary, donor, partner, admin")
		}
		filter.Role = &role
	}
	if filter.IsActive, err = optionalBool(c, "is_active"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "is_active must be a boolean")
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapPage(users, newUserResponse))
}

// GetUser handles retrieving an account with its activity counts
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	details, err := h.adminUC.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UserDetailsResponse{
		User:  newUserResponse(details.User),
		Stats: details.Stats,
	})
}

// UpdateUser handles changing name, role or active flag of an account
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	input := &usecase.UpdateUserInput{Name: req.Name, IsActive: req.IsActive}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.adminUC.UpdateUser(c.Request().Context(), actor, userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// DeleteUser handles removing an account by anonymizing it
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Identity not found in context")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.adminUC.AnonymizeUser(c.Request().Context(), actor, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User anonymized successfully"})
}

// ListOffers handles listing every offer filtered by availability and kind
func (h *AdminHandler) ListOffers(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page and size must be integers")
	}

	var filter entity.OfferFilter
	if filter.Available, err = optionalBool(c, "available"); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "available must be a boolean")
	}
	if raw := c.QueryParam("kind"); raw != "" {
		kind := entity.OfferKind(raw)
		if !kind.IsValid() {
			return response.BadRequest(c, "VALIDATION_FAILED", "kind must be one of goods, meals, credits")
		}
		filter.Kind = &kind
	}

	offers, err := h.adminUC.ListOffers(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapPage(offers, newOfferResponse))
}

// DeleteOffer handles removing any offer
func (h *AdminHandler) DeleteOffer(c echo.Context) error {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	if err := h.adminUC.DeleteOffer(c.Request().Context(), offerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Offer deleted successfully"})
}

// ListTransactions handles listing every transaction filtered by status
func (h *AdminHandler) ListTransactions(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "page and size must be integers")
	}

	var filter entity.TransactionFilter
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.TransactionStatus(raw)
		filter.Status = &status
	}

	txs, err := h.adminUC.ListTransactions(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapPage(txs, newTransactionResponse))
}

// Dashboard handles the marketplace overview
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
