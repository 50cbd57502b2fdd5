package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

// Body is the JSON shape of every error answer.
type Body struct {
	Error  Message `json:"error"`
	Detail any     `json:"detail,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// Response travels on gin's error stack so ErrorHandler can replay it.
type Response struct {
	Status int
	Body   Body
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{
		Status: status,
		Body:   Body{Error: Message{Message: msg}, Detail: detail},
	}
}

// AbortWithError records err for the logging middleware and answers with msg.
// err never reaches the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp.Body)
}

// Internal answers 500 without exposing anything about the cause.
func Internal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		NewResponse(http.StatusInternalServerError, InternalMessage, nil).Body)
}
