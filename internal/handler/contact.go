package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Manzzzx/barasakti/internal/constants"
	"github.com/Manzzzx/barasakti/internal/dto"
	apperrors "github.com/Manzzzx/barasakti/internal/errors"
	"github.com/Manzzzx/barasakti/internal/service"
	"github.com/Manzzzx/barasakti/internal/validation"
	"github.com/Manzzzx/barasakti/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contactService *service.ContactService
	validate       *validator.Validate
}

func NewContactHandler(contactService *service.ContactService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validate,
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		// A wrong-typed field in an otherwise well-formed body is a field
		// violation, not a malformed payload
		if v, ok := validation.DecodeViolation(err); ok {
			logger.GetLogger().Warn("Contact validation failed",
				zap.String("client_ip", c.ClientIP()),
				zap.String("field", v.Field),
			)
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgValidationFailed, []validation.Violation{v}))
			return
		}
		logger.GetLogger().Warn("Malformed contact payload",
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	req.Normalize()

	if violations := validation.Check(h.validate, &req); len(violations) > 0 {
		logger.GetLogger().Warn("Contact validation failed",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("violations", len(violations)),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgValidationFailed, violations))
		return
	}

	res, err := h.contactService.Submit(c.Request.Context(), &req, c.ClientIP(), c.GetHeader(constants.HeaderUserAgent))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.GetLogger().Error("Failed to process contact submission",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildInternalErrorResponse(constants.MsgContactInternalError))
		return
	}

	c.JSON(http.StatusCreated, res)
}
