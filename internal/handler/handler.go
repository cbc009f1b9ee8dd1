package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"TranscriptSummarizer_Backend/internal/auth"
	"TranscriptSummarizer_Backend/internal/llm"
	"TranscriptSummarizer_Backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Handler bundles the HTTP endpoints with their dependencies. Everything is
// constructed once at startup; nothing here is mutated per request.
type Handler struct {
	store      *storage.UserStorage
	tokens     *auth.TokenManager
	summarizer llm.Summarizer
	log        zerolog.Logger
}

func New(store *storage.UserStorage, tokens *auth.TokenManager, summarizer llm.Summarizer, log zerolog.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, summarizer: summarizer, log: log}
}

// Report validation errors against json field names, not Go struct names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// firstValidationMessage turns a binding failure into the message shown to
// the client. emailIssue reports whether any failed rule was on the email
// field so registration can substitute its friendlier wording.
func firstValidationMessage(err error) (msg string, emailIssue bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request data.", false
	}
	for _, fe := range verrs {
		if fe.Field() == "email" {
			emailIssue = true
			break
		}
	}
	return fieldErrorMessage(verrs[0]), emailIssue
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// userID parses the :id path parameter. A non-numeric id short-circuits with
// a 400 and returns ok=false.
func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return id, true
}

// internalError logs the detail and answers with the generic 500 body; the
// cause is never surfaced to the client.
func (h *Handler) internalError(c *gin.Context, what string, err error) {
	h.log.Error().
		Err(err).
		Str("request_id", c.GetString("requestID")).
		Str("path", c.Request.URL.Path).
		Msg(what)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
