package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"fitness_club_backend/internal/validators"
	"fitness_club_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ValidateBody checks the JSON body against fields before the handler binds it.
// With requireAll every field must be present (create); otherwise only present fields are checked (update).
// Fields in optional are checked when present in either mode.
func ValidateBody(fields []validators.Field, requireAll bool, optional ...validators.Field) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.RespondValidationFailed(c, "Unable to read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]interface{}
		if len(bytes.TrimSpace(raw)) == 0 || json.Unmarshal(raw, &body) != nil || body == nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest,
				"Request body must be a JSON object", ""))
			return
		}

		if fe := validators.ValidateFields(body, fields, requireAll); fe != nil {
			utils.RespondFieldInvalid(c, fe.Field, fe.Field+" "+fe.Reason)
			return
		}
		if fe := validators.ValidateFields(body, optional, false); fe != nil {
			utils.RespondFieldInvalid(c, fe.Field, fe.Field+" "+fe.Reason)
			return
		}

		c.Next()
	}
}

// ValidateParam checks a single path parameter.
func ValidateParam(name string, check func(string) bool, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !check(c.Param(name)) {
			utils.RespondFieldInvalid(c, name, name+" "+message)
			return
		}
		c.Next()
	}
}

// ValidateID is ValidateParam for UUID path parameters.
func ValidateID(name string) gin.HandlerFunc {
	return ValidateParam(name, validators.UUID, "must be a valid UUID")
}
