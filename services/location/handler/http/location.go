package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/middleware"
	"github.com/piresc/festshare/internal/pkg/models"
	"github.com/piresc/festshare/internal/utils"
	"github.com/piresc/festshare/services/location"
)

// LocationHandler handles HTTP requests for location sharing
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

var validationErrors = []error{
	models.ErrInvalidDuration,
	models.ErrInvalidVisibilityScope,
	models.ErrInvalidPosition,
	models.ErrInvalidPermission,
	models.ErrInvalidTent,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StartSharing starts or replaces the caller's location session
func (h *LocationHandler) StartSharing(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	var req models.StartSharingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	req.UserID = userID
	req.FestivalID = festivalID

	ctx := c.Request().Context()
	res, err := h.locationUC.StartSharing(ctx, req)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(ctx, "Failed to start sharing",
			logger.String("festival_id", festivalID),
			logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not start sharing")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Sharing started", res)
}

// GetSharingStatus returns the caller's current session
func (h *LocationHandler) GetSharingStatus(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	status, err := h.locationUC.GetSharingStatus(c.Request().Context(), userID, festivalID)
	if err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sharing status", status)
}

// StopSharing ends the caller's session
func (h *LocationHandler) StopSharing(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	ctx := c.Request().Context()
	stopped, err := h.locationUC.StopSharing(ctx, userID, festivalID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to stop sharing",
			logger.String("festival_id", festivalID),
			logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not stop sharing")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sharing stopped", map[string]bool{"stopped": stopped})
}

// RecordPosition ingests one device sample for the caller
func (h *LocationHandler) RecordPosition(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	var pos models.Position
	if err := c.Bind(&pos); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	decision, err := h.locationUC.IngestSample(ctx, userID, festivalID, pos)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(ctx, "Failed to ingest position", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not record position")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position received", map[string]models.SampleDecision{"decision": decision})
}

// GetNearby returns the visible members and tents around the given point
func (h *LocationHandler) GetNearby(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	lat, err := utils.RequiredQueryFloat(c, "lat")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	lng, err := utils.RequiredQueryFloat(c, "lng")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	memberRadius, err := utils.QueryFloat(c, "member_radius", 0)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	tentRadius, err := utils.QueryFloat(c, "tent_radius", 0)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ctx := c.Request().Context()
	res, err := h.locationUC.GetNearby(ctx, userID, festivalID,
		models.Position{Latitude: lat, Longitude: lng},
		models.NearbyOptions{MemberRadius: memberRadius, TentRadius: tentRadius})
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(ctx, "Failed to query nearby", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not load nearby members")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby", res)
}

// GetSuggestion returns the check-in banner for the caller
func (h *LocationHandler) GetSuggestion(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	festivalID := c.Param("festival_id")

	ctx := c.Request().Context()
	s, err := h.locationUC.GetSuggestion(ctx, userID, festivalID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to compute suggestion", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not load suggestion")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Suggestion", s)
}

type tentRequest struct {
	TentID string `json:"tent_id"`
}

// DismissSuggestion mutes the banner for a tent
func (h *LocationHandler) DismissSuggestion(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req tentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	state, err := h.locationUC.DismissSuggestion(ctx, userID, req.TentID)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorCtx(ctx, "Failed to dismiss suggestion", logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not dismiss suggestion")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Suggestion dismissed", state)
}

// RecordCheckin is called by the check-in service and clears a matching dismissal
func (h *LocationHandler) RecordCheckin(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	var req tentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()
	if err := h.locationUC.ClearSuggestion(ctx, userID, req.TentID); err != nil {
		logger.ErrorCtx(ctx, "Failed to clear suggestion",
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ServiceUnavailableResponse(c, "could not record check-in")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Check-in recorded", nil)
}
