package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantDetailEmbedsPizzasOneHop(t *testing.T) {
	pizza := Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Cheese"}
	restaurant := Restaurant{
		ID:      1,
		Name:    "Sanjay's Pizza",
		Address: "address2",
		RestaurantPizzas: []RestaurantPizza{
			{ID: 7, Price: 4, RestaurantID: 1, PizzaID: 2, Pizza: pizza},
		},
	}

	body, err := json.Marshal(restaurant.Detail())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, float64(1), decoded["id"])
	associations := decoded["restaurant_pizzas"].([]interface{})
	require.Len(t, associations, 1)

	association := associations[0].(map[string]interface{})
	assert.Equal(t, float64(4), association["price"])
	assert.Equal(t, float64(2), association["pizza_id"])
	assert.Equal(t, float64(1), association["restaurant_id"])
	assert.NotContains(t, association, "restaurant")

	nested := association["pizza"].(map[string]interface{})
	assert.Equal(t, "Geri", nested["name"])
	assert.NotContains(t, nested, "restaurants")
	assert.NotContains(t, nested, "restaurant_pizzas")
}

func TestRestaurantDetailWithoutPizzasIsEmptyList(t *testing.T) {
	body, err := json.Marshal(Restaurant{ID: 3, Name: "Kiki's Pizza"}.Detail())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"restaurant_pizzas":[]`)
}

func TestRestaurantSummaryHasNoPizzas(t *testing.T) {
	summaries := RestaurantSummaries([]Restaurant{
		{ID: 1, Name: "A", Address: "a", RestaurantPizzas: []RestaurantPizza{{ID: 1}}},
	})

	body, err := json.Marshal(summaries)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"A","address":"a"}]`, string(body))
}

func TestRestaurantPizzaDetail(t *testing.T) {
	rp := RestaurantPizza{
		ID: 4, Price: 15, RestaurantID: 1, PizzaID: 2,
		Restaurant: Restaurant{ID: 1, Name: "A", Address: "a"},
		Pizza:      Pizza{ID: 2, Name: "Emma", Ingredients: "Dough"},
	}

	body, err := json.Marshal(rp.Detail())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"pizza": {"id": 2, "name": "Emma", "ingredients": "Dough"},
		"pizza_id": 2,
		"price": 15,
		"restaurant": {"id": 1, "name": "A", "address": "a"},
		"restaurant_id": 1
	}`, string(body))
}

func TestPriceInRange(t *testing.T) {
	testCases := []struct {
		price    float64
		expected bool
	}{
		{0, false},
		{0.99, false},
		{1, true},
		{15, true},
		{30, true},
		{30.01, false},
		{31, false},
		{-5, false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, PriceInRange(tt.price), "price %v", tt.price)
	}
}

func TestBeforeSaveRejectsInvalidRows(t *testing.T) {
	rp := &RestaurantPizza{Price: 31}

	err := rp.BeforeSave(nil)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrValidation, appErr.Kind)
	assert.Equal(t, []string{"restaurant_id is required", "pizza_id is required", PriceRangeMessage}, appErr.Messages)
}

func TestBeforeSaveAcceptsValidRow(t *testing.T) {
	rp := &RestaurantPizza{Price: 15, RestaurantID: 1, PizzaID: 1}
	assert.NoError(t, rp.BeforeSave(nil))
}

func TestAppErrorStatus(t *testing.T) {
	cause := errors.New("disk I/O error")

	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Restaurant not found").Status())
	assert.Equal(t, http.StatusBadRequest, NewValidationError("price is required").Status())
	assert.Equal(t, http.StatusBadRequest, NewReferenceError("pizza_id 9 does not exist").Status())
	assert.Equal(t, http.StatusBadRequest, NewMalformedError("Invalid request body", cause).Status())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError(cause).Status())

	internal := NewInternalError(cause)
	assert.Equal(t, "disk I/O error", internal.Error())
	assert.ErrorIs(t, internal, cause)
	assert.Equal(t, "a; b", NewValidationError("a", "b").Error())
}
