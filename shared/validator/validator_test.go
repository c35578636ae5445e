package validator_test

import (
	"kasaglow/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type cardForm struct {
	Name   string `json:"name"   validate:"notblank"`
	Number string `json:"number" validate:"required,min=15"`
	Expiry string `json:"expiry" validate:"required,cardexpiry"`
	CVC    string `json:"cvc"    validate:"required,min=3"`
}

func validCard() cardForm {
	return cardForm{Name: "Ama Mensah", Number: "4242424242424242", Expiry: "12/29", CVC: "123"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *cardForm)
		wantErr string
	}{
		{name: "valid card", mutate: func(_ *cardForm) {}},
		{name: "blank name", mutate: func(c *cardForm) { c.Name = "   " }, wantErr: "name is required"},
		{name: "short number", mutate: func(c *cardForm) { c.Number = "4242" }, wantErr: "card number must be at least 15 digits"},
		{name: "bad month", mutate: func(c *cardForm) { c.Expiry = "13/29" }, wantErr: "expiry must be a valid expiry date (MM/YY)"},
		{name: "expiry without slash", mutate: func(c *cardForm) { c.Expiry = "1229" }},
		{name: "short cvc", mutate: func(c *cardForm) { c.CVC = "12" }, wantErr: "cvc must be at least 3 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)

			err := validator.ValidateStruct(&card)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{"valid required string", "test", "required", false},
		{"empty required string", "", "required", true},
		{"valid email", "test@example.com", "email", false},
		{"invalid email", "invalid-email", "email", true},
		{"valid expiry", "01/30", "cardexpiry", false},
		{"invalid expiry", "00/30", "cardexpiry", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{"valid JSON", `{"name":"Ama","number":"4242424242424242","expiry":"12/29","cvc":"123"}`, false},
		{"invalid field", `{"name":"Ama","number":"42","expiry":"12/29","cvc":"123"}`, true},
		{"malformed JSON", `{"name":"Ama","number":}`, true},
		{"empty JSON", `{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data cardForm
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
