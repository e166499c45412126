package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceRequest struct {
	PizzaID *uint    `json:"pizza_id" binding:"required,min=1"`
	Price   *float64 `json:"price" binding:"required,price"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestMessages(t *testing.T) {
	Setup()
	Setup() // second call must not re-register

	testCases := []struct {
		name     string
		request  priceRequest
		expected []string
	}{
		{
			name:     "missing fields use json names",
			request:  priceRequest{},
			expected: []string{"pizza_id is required", "price is required"},
		},
		{
			name:     "price below range",
			request:  priceRequest{PizzaID: ptr[uint](1), Price: ptr(0.0)},
			expected: []string{"price must be between 1 and 30"},
		},
		{
			name:     "price above range",
			request:  priceRequest{PizzaID: ptr[uint](1), Price: ptr(31.0)},
			expected: []string{"price must be between 1 and 30"},
		},
		{
			name:     "zero id",
			request:  priceRequest{PizzaID: ptr[uint](0), Price: ptr(15.0)},
			expected: []string{"pizza_id must be at least 1"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.request)
			require.Error(t, err)

			messages, ok := Messages(err)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestMessagesAcceptsValidRequest(t *testing.T) {
	Setup()

	request := priceRequest{PizzaID: ptr[uint](2), Price: ptr(15.0)}
	assert.NoError(t, binding.Validator.ValidateStruct(&request))
}

func TestMessagesIgnoresOtherErrors(t *testing.T) {
	messages, ok := Messages(errors.New("unexpected EOF"))
	assert.False(t, ok)
	assert.Nil(t, messages)
}
