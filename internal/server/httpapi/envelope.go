package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/sjson"
	"github.com/zayats-yacht/yachtclient/internal/common"
	"github.com/zayats-yacht/yachtclient/internal/validation"
)

// actionResult is the envelope of data queries and form submissions.
type actionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, actionResult{Success: true, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, actionResult{Success: false, Message: message})
}

// validationBody builds
//
//	{"success":false,"message":"Validation error","data":{"errors":{"field":["msg"]}}}
//
// with the fields in the order given. The client scrolls to the first
// field it sees.
func validationBody(issues []validation.Issue) ([]byte, error) {
	errs, err := validation.IssuesJSON(issues, true)
	if err != nil {
		return nil, err
	}

	body, err := sjson.SetBytes([]byte(`{}`), "success", false)
	if err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "message", common.ValidationErrorMessage); err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(body, "data.errors", errs)
}
