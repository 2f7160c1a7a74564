package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeTransferFailed   ErrorCode = "transfer_failed"
	ErrCodeInternalError    ErrorCode = "internal_error"
)

// APIError is the wire form of an error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details string) {
	c.JSON(http.StatusBadRequest, &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: details,
	})
}

// respondDomainError translates an engine or ledger error into an HTTP
// response. Unknown errors are logged and reported as internal.
func respondDomainError(c *gin.Context, err error) {
	var (
		notFound    *domain.AuctionNotFoundError
		forbidden   *domain.UnauthorizedError
		unchanged   *domain.RecipientUnchangedError
		transfer    *domain.TransferFailedError
		zeroDur     *domain.DurationIsZeroError
		feeSum      *domain.FeeRoyaltySumExceedsDenominatorError
		feeOver     *domain.FeeExceedsDenominatorError
		badType     *domain.InvalidTokenTypeError
		badAmount   *domain.InvalidAmountError
		badRange    *domain.ReserveExceedsStartPriceError
		lenMismatch *domain.ArgumentLengthMismatchError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, &APIError{
			Code:    ErrCodeNotFound,
			Message: "Auction not found",
			Details: err.Error(),
		})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, &APIError{
			Code:    ErrCodeForbidden,
			Message: "Caller not allowed",
			Details: err.Error(),
		})
	case errors.As(err, &unchanged):
		c.JSON(http.StatusConflict, &APIError{
			Code:    ErrCodeConflict,
			Message: "Value already set",
			Details: err.Error(),
		})
	case errors.As(err, &transfer):
		c.JSON(http.StatusBadGateway, &APIError{
			Code:    ErrCodeTransferFailed,
			Message: "On-chain transfer failed",
			Details: err.Error(),
		})
	case errors.As(err, &zeroDur),
		errors.As(err, &feeSum),
		errors.As(err, &feeOver),
		errors.As(err, &badType),
		errors.As(err, &badAmount),
		errors.As(err, &badRange),
		errors.As(err, &lenMismatch):
		c.JSON(http.StatusUnprocessableEntity, &APIError{
			Code:    ErrCodeValidationFailed,
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, &APIError{
			Code:    ErrCodeInternalError,
			Message: "Internal server error",
		})
	}
}
