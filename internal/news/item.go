package news

// Item is a news article in transit through the acquisition pipeline:
// produced by a Source, annotated with relevance and sentiment, persisted by
// callers as entity.MarketNews once enriched.
type Item struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	URL            string         `json:"url"`
	Source         string         `json:"source"`
	PublishedDate  string         `json:"published_date"`
	RelevanceScore float64        `json:"relevance_score"`
	SentimentScore float64        `json:"sentiment_score"`
	Recommendation Recommendation `json:"trading_recommendation"`
}

// Recommendation is the deterministic trading label derived from an item's
// sentiment score.
type Recommendation struct {
	Direction   string  `json:"direction"`
	Confidence  string  `json:"confidence"`
	OptionsBias string  `json:"options_bias"`
	Rationale   string  `json:"rationale"`
	Score       float64 `json:"score"`
}
