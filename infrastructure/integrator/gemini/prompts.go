package gemini

import (
	"fmt"
	"time"
)

func keywordPrompt(keyword string) string {
	return fmt.Sprintf(`You are a market intelligence analyst for the jewelry industry. Analyze the search keyword %q.

Respond ONLY with valid JSON, no markdown and no explanatory text, using exactly this structure:
{
  "keyword": %q,
  "isTrending": boolean,
  "trendDirection": "up" | "down" | "stable",
  "interestOverTime": [{"month": "Month Year", "searches": number 0-100}] (12 months, oldest first),
  "relatedSearches": [{"query": string, "category": string, "demand": "Low" | "Medium" | "High" | "Very High"}] (5-7 entries),
  "aiRecommendation": {
    "confidence": number 0-100,
    "summary": string,
    "insights": [string] (3-4 actionable insights),
    "potentialImpact": "Low" | "Medium" | "High"
  },
  "categoryDemand": [{"category": string, "level": "Low" | "Medium" | "High" | "Very High", "percentage": number 0-100}] (3-4 entries)
}

Keep the data realistic for the jewelry market, with seasonal variation in the interest series.`, keyword, keyword)
}

func marketOverviewPrompt(now time.Time) string {
	return fmt.Sprintf(`You are a market intelligence analyst for the Indian jewelry industry. Today is %s.

Respond ONLY with valid JSON, no markdown and no explanatory text, using exactly this structure:
{
  "trendingCategories": [{"name": string, "trend": "up" | "down", "change": string like "+24%%"}] (4-5 entries),
  "categoryTrends": [{"month": "Jan", "gold": number 0-100, "silver": number 0-100, "diamond": number 0-100}] (6 months),
  "searchInterest": [{"week": "W1", "interest": number 0-100}] (6 weeks),
  "seasonalInsights": [{"title": string, "description": string, "emoji": string}] (2-3 entries),
  "lastUpdated": %q
}

Gold should lead interest, followed by silver and diamond. Seasonal insights must only cover events between one week and three months from today (weddings, Diwali, Akshaya Tritiya and similar).`,
		now.Format("2006-01-02"), now.UTC().Format(time.RFC3339))
}
