package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	// Code is a machine-readable condition the frontend branches on, e.g. SLOT_TAKEN.
	Code   string `json:"code,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg, code string, detail any) Response {
	resp := Response{Status: status, Code: code, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware and
// writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, msg, "", detail)
}

func AbortWithCode(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, code, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
