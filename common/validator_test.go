package common

import (
	"account-api/model"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeCreateRequest(t *testing.T, body string) *AppError {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	var payload model.CreateAccountRequest
	return ValidateAndDecode(req, &payload)
}

func TestValidateAndDecode_CreateAccountRequest(t *testing.T) {
	valid := `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"USD","openingBalance":500.00}`

	t.Run("valid payload passes", func(t *testing.T) {
		assert.Nil(t, decodeCreateRequest(t, valid))
	})

	t.Run("zero opening balance is accepted", func(t *testing.T) {
		body := `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC002","currency":"EUR","openingBalance":0.00}`
		assert.Nil(t, decodeCreateRequest(t, body))
	})

	rejected := []struct {
		name string
		body string
	}{
		{"missing customerId", `{"accountNumber":"ACC001","currency":"USD","openingBalance":500.00}`},
		{"malformed customerId", `{"customerId":"not-a-uuid","accountNumber":"ACC001","currency":"USD","openingBalance":500.00}`},
		{"missing accountNumber", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","currency":"USD","openingBalance":500.00}`},
		{"empty accountNumber", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"","currency":"USD","openingBalance":500.00}`},
		{"lowercase currency", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"us","openingBalance":500.00}`},
		{"four letter currency", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"USDX","openingBalance":500.00}`},
		{"digits in currency", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"US1","openingBalance":500.00}`},
		{"missing openingBalance", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"USD"}`},
		{"negative openingBalance", `{"customerId":"7f8d3a1c-9f6e-4f0b-8a1d-2c3e4b5a6d7e","accountNumber":"ACC001","currency":"USD","openingBalance":-0.01}`},
		{"not json at all", `this is not json`},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			appErr := decodeCreateRequest(t, tc.body)
			if assert.NotNil(t, appErr) {
				assert.Equal(t, http.StatusBadRequest, appErr.Code)
			}
		})
	}
}
