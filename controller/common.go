package controller

import (
	"net/http"

	"stockdock/customerrors"
	"stockdock/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(err string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: false,
			Error:   err,
		},
	}
}

// writeError sends err in the common envelope with the status its sentinel
// maps to. Server errors hide the detail from the client.
func writeError(c *gin.Context, err error) {
	status := customerrors.StatusFor(err)
	body := NewErrorResponse(err.Error()).Body
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Str("path", c.Request.URL.Path).Msg("request failed")
		body.Error = "An unexpected error occurred"
	}
	c.JSON(status, body)
}

// humaError is the huma counterpart of writeError.
func humaError(err error) error {
	status := customerrors.StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		return huma.Error500InternalServerError("An unexpected error occurred")
	}
	return huma.NewError(status, err.Error())
}
