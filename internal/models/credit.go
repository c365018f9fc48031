package models

// CreditInput содержит параметры кредитной оценки.
// nil означает, что клиент не передал соответствующий фактор.
type CreditInput struct {
	EntrepreneurName string   `json:"entrepreneurName" validate:"required"`
	AmountRequested  *float64 `json:"amountRequested" validate:"required,gt=0"`
	Purpose          string   `json:"purpose" validate:"required"`
	BusinessRevenue  *float64 `json:"businessRevenue" validate:"omitempty,gte=0"`
	BusinessAge      *float64 `json:"businessAge" validate:"omitempty,gte=0"`
	CollateralValue  *float64 `json:"collateralValue" validate:"omitempty,gte=0"`
}

// CreditEvaluation результат кредитной оценки.
type CreditEvaluation struct {
	CreditScore    int    `json:"creditScore"`
	Recommendation string `json:"recommendation"`
}
