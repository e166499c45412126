// Package validation configures gin's request binding and turns validator
// failures into the messages returned to clients.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupOnce sync.Once

// Setup makes the gin validator report JSON field names instead of Go field names
// and registers the "price" tag.
// It is safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("price", validPrice); err != nil {
			panic(err)
		}
	})
}

// validPrice backs the "price" tag
func validPrice(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return models.PriceInRange(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.PriceInRange(float64(fl.Field().Int()))
	default:
		return false
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// Messages converts validator.ValidationErrors into one message per failed field.
// ok is false when err did not come from the validator (malformed JSON, wrong types).
func Messages(err error) (messages []string, ok bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	for _, fe := range validationErrors {
		messages = append(messages, message(fe))
	}
	return messages, true
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "price":
		return models.PriceRangeMessage
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
