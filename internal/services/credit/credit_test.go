package credit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/finher/internal/models"
)

func f(v float64) *float64 { return &v }

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		in        models.CreditInput
		wantScore int
		wantRec   string
	}{
		{
			name: "strong applicant clamps at max",
			in: models.CreditInput{
				EntrepreneurName: "Anita Verma",
				AmountRequested:  f(50_000),
				Purpose:          "business growth",
				BusinessRevenue:  f(2_000_000),
				BusinessAge:      f(6),
				CollateralValue:  f(80_000),
			},
			wantScore: 850,
			wantRec:   RecommendationEligible,
		},
		{
			name: "large startup request",
			in: models.CreditInput{
				EntrepreneurName: "Jo",
				AmountRequested:  f(900_000),
				Purpose:          "new startup",
			},
			wantScore: 390,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "growth never takes startup penalty",
			in: models.CreditInput{
				EntrepreneurName: "Jo",
				AmountRequested:  f(200_000),
				Purpose:          "Growth of a NEW store",
			},
			// 500 + 50 + 50 - 10
			wantScore: 590,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "middle bands",
			in: models.CreditInput{
				EntrepreneurName: "Maria Lopez Garcia",
				AmountRequested:  f(100_000),
				Purpose:          "inventory",
				BusinessRevenue:  f(500_000),
				BusinessAge:      f(2),
				CollateralValue:  f(100_000),
			},
			// 500 + 50 + 50 + 20 + 20 + 20
			wantScore: 660,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "weak factors clamp at min",
			in: models.CreditInput{
				EntrepreneurName: "Al",
				AmountRequested:  f(1_000_000),
				Purpose:          "startup",
				BusinessRevenue:  f(1),
				BusinessAge:      f(1),
				CollateralValue:  f(10),
			},
			// 500 - 50 - 20 - 20 - 20 - 50 - 10 = 330
			wantScore: 330,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "zero values count as absent",
			in: models.CreditInput{
				EntrepreneurName: "Ten chars!",
				AmountRequested:  f(0),
				BusinessRevenue:  f(0),
				BusinessAge:      f(0),
				CollateralValue:  f(5),
			},
			// only the name rule applies: exactly 10 characters
			wantScore: 490,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "just above threshold",
			in: models.CreditInput{
				EntrepreneurName: "Grace Hopper",
				AmountRequested:  f(10_000),
				Purpose:          "expansion",
				BusinessAge:      f(3),
			},
			// 500 + 100 + 20 + 50 + 20
			wantScore: 690,
			wantRec:   RecommendationAlternative,
		},
		{
			name: "eligible",
			in: models.CreditInput{
				EntrepreneurName: "Grace Hopper",
				AmountRequested:  f(10_000),
				Purpose:          "expansion",
				BusinessAge:      f(3),
				CollateralValue:  f(20_000),
			},
			// 500 + 100 + 20 + 50 + 50 + 20
			wantScore: 740,
			wantRec:   RecommendationEligible,
		},
		{
			name:      "empty input",
			in:        models.CreditInput{},
			wantScore: BaseScore,
			wantRec:   RecommendationAlternative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, rec := Score(tt.in)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantRec, rec)
		})
	}
}

func TestScore_BoundsAndDeterminism(t *testing.T) {
	in := models.CreditInput{
		EntrepreneurName: "Repeatable Name",
		AmountRequested:  f(123_456),
		Purpose:          "expansion",
		BusinessRevenue:  f(750_000),
	}
	first := Evaluate(in)
	for range 10 {
		assert.Equal(t, first, Evaluate(in))
	}
	assert.GreaterOrEqual(t, first.CreditScore, MinScore)
	assert.LessOrEqual(t, first.CreditScore, MaxScore)
}

func TestScore_NameLength(t *testing.T) {
	// 10 символов, но больше 10 байт
	score, _ := Score(models.CreditInput{EntrepreneurName: "Анна Петро"})
	assert.Equal(t, BaseScore-10, score)

	// 9 рун, одна из них вне BMP и занимает две единицы UTF-16
	score, _ = Score(models.CreditInput{EntrepreneurName: "Ada Lov😀e"})
	assert.Equal(t, BaseScore-10, score)
	score, _ = Score(models.CreditInput{EntrepreneurName: "Ada Love😀e"})
	assert.Equal(t, BaseScore+20, score)
}

func TestNameLength(t *testing.T) {
	assert.Equal(t, 0, nameLength(""))
	assert.Equal(t, 5, nameLength("Grace"))
	assert.Equal(t, 4, nameLength("Анна"))
	assert.Equal(t, 2, nameLength("😀"))
}
