package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/dto"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/ratelimit"
	"golang-news-curator/pkg/utils"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository implements AIRepository against the Gemini
// generateContent endpoint. The genai client is only used to count prompt
// tokens before sending, so the token limiter throttles ahead of the call.
type geminiAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	genAiClient    *genai.Client
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewGeminiAIRepository creates a new repository for the Gemini API.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (AIRepository, error) {
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("gemini max_request_per_minute must be positive")
	}
	tokenLimiter := ratelimit.NewTokenLimiter(cfg.Gemini.MaxTokenPerMinute)
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		client:         &http.Client{Timeout: 90 * time.Second},
		cfg:            cfg,
		logger:         log,
		genAiClient:    genAiClient,
		tokenLimiter:   tokenLimiter,
		requestLimiter: requestLimiter,
	}, nil
}

func (r *geminiAIRepository) executeGeminiAIRequest(ctx context.Context, prompt string) (*dto.GeminiAPIResponse, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, "user")}
	countResp, err := r.genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count tokens: %w", err)
	}
	r.logger.Debug("Token count", logger.IntField("total_tokens", int(countResp.TotalTokens)))

	if int(countResp.TotalTokens) > r.cfg.Gemini.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}
	if err := r.tokenLimiter.Wait(ctx, int(countResp.TotalTokens)); err != nil {
		return nil, fmt.Errorf("token limiter wait failed: %w", err)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("request limiter wait failed: %w", err)
	}

	reqBody := dto.GeminiAPIRequest{
		Contents: []dto.Content{{Parts: []dto.Part{{Text: prompt}}}},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", r.cfg.Gemini.BaseURL, r.cfg.Gemini.Model, r.cfg.Gemini.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from Gemini API: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var geminiResp dto.GeminiAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, fmt.Errorf("failed to decode Gemini response: %w", err)
	}
	return &geminiResp, nil
}

func geminiResponseText(resp *dto.GeminiAPIResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content found in Gemini response")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// GenerateNewsSummary produces a short summary for a news record. Echoed or
// empty output falls back to a templated summary.
func (r *geminiAIRepository) GenerateNewsSummary(ctx context.Context, symbol, title, url, articleContent string) (string, error) {
	prompt := BuildNewsSummaryPrompt(symbol, title, url, articleContent, r.cfg.Quality.TargetLanguage)
	resp, err := r.executeGeminiAIRequest(ctx, prompt)
	if err != nil {
		return "", err
	}
	raw, err := geminiResponseText(resp)
	if err != nil {
		return "", err
	}

	summary := utils.CleanGeneratedText(raw)
	if summary == "" || utils.ContainsAny(summary, summaryPromptFragments) {
		r.logger.Warn("Generated summary is empty or echoes the prompt", logger.StringField("symbol", symbol))
		return fmt.Sprintf("News related to %s: %s", symbol, title), nil
	}
	return summary, nil
}

// TranslateTitle translates a headline into the configured target language.
// Unusable output falls back to the original title.
func (r *geminiAIRepository) TranslateTitle(ctx context.Context, title string) (string, error) {
	prompt := BuildTitleTranslationPrompt(title, r.cfg.Quality.TargetLanguage)
	resp, err := r.executeGeminiAIRequest(ctx, prompt)
	if err != nil {
		return "", err
	}
	raw, err := geminiResponseText(resp)
	if err != nil {
		return "", err
	}

	translated := utils.CleanGeneratedText(raw)
	if translated == "" || utils.ContainsAny(translated, translationPromptFragments) || utf8.RuneCountInString(translated) < 10 {
		r.logger.Warn("Generated translation is unusable, keeping original title", logger.StringField("title", title))
		return title, nil
	}
	return translated, nil
}

// GenerateSentimentAnalysis writes a narrative for a market sentiment record.
func (r *geminiAIRepository) GenerateSentimentAnalysis(ctx context.Context, sentiment *entity.MarketSentiment) (string, error) {
	prompt := BuildSentimentAnalysisPrompt(sentiment, r.cfg.Quality.TargetLanguage)
	resp, err := r.executeGeminiAIRequest(ctx, prompt)
	if err != nil {
		return "", err
	}
	raw, err := geminiResponseText(resp)
	if err != nil {
		return "", err
	}

	analysis := utils.CleanGeneratedText(raw)
	if analysis == "" || utils.ContainsAny(analysis, sentimentPromptFragments) {
		return "", fmt.Errorf("generated sentiment analysis is empty or echoes the prompt")
	}
	return analysis, nil
}

// GenerateExpertAnalysis writes an expert narrative for a trading signal.
func (r *geminiAIRepository) GenerateExpertAnalysis(ctx context.Context, signal *entity.TradingSignal) (string, error) {
	prompt := BuildExpertAnalysisPrompt(signal, r.cfg.Quality.TargetLanguage)
	resp, err := r.executeGeminiAIRequest(ctx, prompt)
	if err != nil {
		return "", err
	}
	raw, err := geminiResponseText(resp)
	if err != nil {
		return "", err
	}

	analysis := utils.CleanGeneratedText(raw)
	if analysis == "" || utils.ContainsAny(analysis, expertPromptFragments) {
		return "", fmt.Errorf("generated expert analysis is empty or echoes the prompt")
	}
	return analysis, nil
}
