package dto

// QualityPassResult reports how many records each remediation pass repaired.
type QualityPassResult struct {
	NewsProcessed      int `json:"news_processed"`
	SentimentProcessed int `json:"sentiment_processed"`
	SignalsProcessed   int `json:"signals_processed"`
}

// Total returns the number of records repaired across all tables.
func (r QualityPassResult) Total() int {
	return r.NewsProcessed + r.SentimentProcessed + r.SignalsProcessed
}
