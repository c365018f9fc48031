// Package credit вычисляет упрощённую кредитную оценку заявки.
//
// Оценка детерминирована: одинаковые входные данные всегда дают одинаковый результат.
// Базовое значение 500, итог ограничивается диапазоном [MinScore, MaxScore].
package credit

import (
	"strings"
	"unicode/utf16"

	"github.com/magabrotheeeer/finher/internal/models"
)

const (
	BaseScore = 500
	MinScore  = 300
	MaxScore  = 850

	// Оценка строго выше EligibleThreshold считается достаточной.
	EligibleThreshold = 700

	RecommendationEligible    = "Eligible for standard funding"
	RecommendationAlternative = "Consider alternative financing options"
)

// present сообщает, передан ли числовой фактор. Ноль считается отсутствующим значением.
func present(v *float64) bool {
	return v != nil && *v != 0
}

// Score возвращает кредитную оценку и рекомендацию.
// Отсутствующие факторы не влияют на оценку.
func Score(in models.CreditInput) (int, string) {
	score := BaseScore

	if present(in.AmountRequested) {
		switch amount := *in.AmountRequested; {
		case amount < 100_000:
			score += 100
		case amount < 500_000:
			score += 50
		default:
			score -= 50
		}
	}

	if present(in.BusinessRevenue) {
		switch revenue := *in.BusinessRevenue; {
		case revenue >= 1_000_000:
			score += 100
		case revenue >= 500_000:
			score += 50
		default:
			score -= 20
		}
	}

	if present(in.BusinessAge) {
		switch age := *in.BusinessAge; {
		case age >= 5:
			score += 50
		case age >= 2:
			score += 20
		default:
			score -= 20
		}
	}

	// залог сравнивается с суммой, поэтому без суммы фактор не применяется
	if present(in.CollateralValue) && present(in.AmountRequested) {
		collateral, amount := *in.CollateralValue, *in.AmountRequested
		switch {
		case collateral >= amount*1.5:
			score += 50
		case collateral >= amount:
			score += 20
		default:
			score -= 20
		}
	}

	if in.Purpose != "" {
		purpose := strings.ToLower(in.Purpose)
		if strings.Contains(purpose, "expansion") || strings.Contains(purpose, "growth") {
			score += 50
		} else if strings.Contains(purpose, "startup") || strings.Contains(purpose, "new") {
			score -= 50
		}
	}

	if in.EntrepreneurName != "" {
		if nameLength(in.EntrepreneurName) > 10 {
			score += 20
		} else {
			score -= 10
		}
	}

	score = min(max(score, MinScore), MaxScore)

	if score > EligibleThreshold {
		return score, RecommendationEligible
	}
	return score, RecommendationAlternative
}

// nameLength считает длину имени в единицах UTF-16, как длину строки считают
// веб-клиенты: символ вне базовой плоскости занимает две единицы.
func nameLength(name string) int {
	n := 0
	for _, r := range name {
		n += utf16.RuneLen(r)
	}
	return n
}

// Evaluate оборачивает Score в модель ответа.
func Evaluate(in models.CreditInput) models.CreditEvaluation {
	score, rec := Score(in)
	return models.CreditEvaluation{CreditScore: score, Recommendation: rec}
}
