// Package seed заполняет справочные таблицы программами финансирования и обучающими материалами.
package seed

import "github.com/magabrotheeeer/finher/internal/models"

var fundingOptions = []models.FundingOption{
	{
		Name:            "Pradhan Mantri Mudra Yojana (PMMY)",
		Description:     "Provides microloans up to Rs.10 lakh for non-corporate, non-farm small/micro enterprises in manufacturing, trading, and services.",
		Eligibility:     "Entrepreneurs aged 18-60 with viable business ideas.",
		ApplicationLink: "https://www.mudra.org.in/",
	},
	{
		Name:            "Stand Up India Scheme",
		Description:     "Facilitates bank loans between Rs. 10 lakh and Rs. 1 crore to at least one SC/ST borrower and at least one woman borrower per bank branch.",
		Eligibility:     "Women entrepreneurs, especially from SC/ST communities.",
		ApplicationLink: "https://www.standupmitra.in/",
	},
	{
		Name:            "Credit Guarantee Fund Trust for Micro and Small Enterprises (CGTMSE)",
		Description:     "Provides collateral-free credit to MSMEs by sharing the credit risk between banks and the government.",
		Eligibility:     "Eligible MSMEs as per guidelines.",
		ApplicationLink: "https://www.cgtmse.in/",
	},
}

var literacyResources = []models.LiteracyResourceInput{
	{
		Title:        "Introduction to Budgeting",
		Description:  "An article explaining the basics of personal and business budgeting.",
		ResourceType: models.ResourceArticle,
		URL:          "https://example.com/budgeting-101",
	},
	{
		Title:        "Cash Flow Management for SMEs",
		Description:  "Video tutorial on managing cash flow for small and medium enterprises.",
		ResourceType: models.ResourceVideo,
		URL:          "https://youtube.com/example-cashflow",
	},
	{
		Title:        "Business Growth Strategies",
		Description:  "A free online course covering growth strategies for new entrepreneurs.",
		ResourceType: models.ResourceCourse,
		URL:          "https://example.com/course/business-growth",
	},
}
