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

type OrderHandler struct {
	orderService *service.OrderService
	validate     *validator.Validate
}

func NewOrderHandler(orderService *service.OrderService, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validate,
	}
}

// Submit handles POST /api/orders.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req dto.OrderRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		// A wrong-typed field in an otherwise well-formed body is a field
		// violation, not a malformed payload
		if v, ok := validation.DecodeViolation(err); ok {
			logger.GetLogger().Warn("Order validation failed",
				zap.String("client_ip", c.ClientIP()),
				zap.String("field", v.Field),
			)
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgOrderValidationFail, []validation.Violation{v}))
			return
		}
		logger.GetLogger().Warn("Malformed order payload",
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgInvalidJSON, nil))
		return
	}

	req.Normalize()

	if violations := validation.Check(h.validate, &req); len(violations) > 0 {
		logger.GetLogger().Warn("Order validation failed",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("violations", len(violations)),
		)
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(constants.MsgOrderValidationFail, violations))
		return
	}

	res, err := h.orderService.Submit(c.Request.Context(), &req, c.ClientIP(), c.GetHeader(constants.HeaderUserAgent))
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		if status == http.StatusBadRequest {
			c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
			return
		}
		logger.GetLogger().Error("Failed to process order submission",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("http_status", status),
			zap.Error(err),
		)
		c.JSON(status, constants.BuildInternalErrorResponse(constants.MsgOrderInternalError))
		return
	}

	c.JSON(http.StatusCreated, res)
}

// Status handles GET /api/orders?id=ORD-....
func (h *OrderHandler) Status(c *gin.Context) {
	id := c.Query("id")

	status, err := h.orderService.Status(c.Request.Context(), id)
	if err != nil {
		httpStatus := apperrors.ToHTTPStatus(err)
		switch httpStatus {
		case http.StatusBadRequest, http.StatusNotFound:
			c.JSON(httpStatus, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		default:
			logger.GetLogger().Error("Failed to resolve order status",
				zap.String("order_id", id),
				zap.Error(err),
			)
			c.JSON(httpStatus, constants.BuildInternalErrorResponse(constants.MsgOrderLookupError))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OrderStatusResponse{
		Success: true,
		Order:   *status,
	})
}
