package models

import "time"

// FundingRequest представляет заявку предпринимателя на финансирование.
// Поле CreatedBy задаётся при создании и больше не меняется.
type FundingRequest struct {
	ID               string    `json:"id"`
	EntrepreneurName string    `json:"entrepreneurName"`
	AmountRequested  float64   `json:"amountRequested"`
	Purpose          string    `json:"purpose"`
	Description      string    `json:"description"`
	ContactPhone     string    `json:"contactPhone"`
	ContactAddress   string    `json:"contactAddress"`
	CreatedBy        string    `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// OwnerID возвращает идентификатор создателя заявки.
func (f *FundingRequest) OwnerID() string {
	return f.CreatedBy
}

// FundingRequestInput используется для приёма изменяемых полей заявки из JSON-запроса.
type FundingRequestInput struct {
	EntrepreneurName string  `json:"entrepreneurName" validate:"required,max=200"`
	AmountRequested  float64 `json:"amountRequested" validate:"required,gt=0"`
	Purpose          string  `json:"purpose" validate:"required,max=500"`
	Description      string  `json:"description" validate:"max=5000"`
	ContactPhone     string  `json:"contactPhone" validate:"max=50"`
	ContactAddress   string  `json:"contactAddress" validate:"max=500"`
}

// FundingOption описывает программу альтернативного финансирования.
// Через API доступна только для чтения, данные загружает сидер.
type FundingOption struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Eligibility     string    `json:"eligibility"`
	ApplicationLink string    `json:"applicationLink"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
