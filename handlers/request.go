package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cash-track/middleware"
	"cash-track/models"
)

func userID(c *gin.Context) string {
	return middleware.UserID(c)
}

// Number is a JSON number that also accepts numeric strings, as sent by
// form based clients.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*n = Number(v)
	return nil
}

func (n *Number) float() *float64 {
	if n == nil {
		return nil
	}
	v := float64(*n)
	return &v
}

// Validation errors name fields by their JSON key.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bind decodes and validates the JSON body into dst, answering 400 when
// either fails. An empty body is validated as a zero dst. When required
// fields are absent, required builds the message from their names.
func bind(c *gin.Context, dst any, required func(missing []string) string) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err == nil {
		return true
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		badRequest(c, "Invalid data: "+err.Error())
		return false
	}
	var missing []string
	for _, fe := range errs {
		if strings.HasPrefix(fe.Tag(), "required") {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 && required != nil {
		badRequest(c, required(missing))
		return false
	}
	badRequest(c, "Invalid data: "+describe(errs[0]))
	return false
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "required", "required_without":
		return fe.Field() + " is required"
	}
	return fe.Field() + " is invalid"
}

// requires returns a required-field message builder that ignores which
// fields are missing.
func requires(msg string) func([]string) string {
	return func([]string) string { return msg }
}

// optionalDate parses s, falling back to nil ("now") when it is empty or
// not a date.
func optionalDate(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

// requiredDate parses a date the caller must supply correctly, answering
// 400 when it does not parse.
func requiredDate(c *gin.Context, field, s string) (time.Time, bool) {
	t, err := models.ParseDate(s)
	if err != nil {
		badRequest(c, fmt.Sprintf("Invalid data: %s: %v", field, err))
		return time.Time{}, false
	}
	return t, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
