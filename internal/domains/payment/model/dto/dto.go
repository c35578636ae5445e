package dto

import (
	"kasaglow/internal/domains/payment/model"
	"kasaglow/shared/constant"
	"strings"
)

type CardPaymentRequest struct {
	HolderName string `json:"name"   validate:"required,notblank,max=100"`
	Number     string `json:"number" validate:"required,min=15,max=23"`
	Expiry     string `json:"expiry" validate:"required,cardexpiry"`
	CVC        string `json:"cvc"    validate:"required,min=3,max=4"`
}

func (r *CardPaymentRequest) ToModel() model.Card {
	return model.Card{
		HolderName: strings.TrimSpace(r.HolderName),
		Number:     r.Number,
		Expiry:     r.Expiry,
		CVC:        r.CVC,
	}
}

type WalletErrorRequest struct {
	OrderID string `json:"order_id"`
	Message string `json:"message" validate:"required,notblank,max=500"`
}

type OrderResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency_code"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.Description = model.Description
	r.Amount = model.Amount.String()
	r.Currency = model.Currency
	r.Status = string(model.Status)
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}
