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
)

// openAIRepository implements AIRepository against an OpenAI-compatible
// chat completions endpoint.
type openAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	tokenLimiter   *ratelimit.TokenLimiter
	requestLimiter *rate.Limiter
}

// NewOpenAIRepository creates a new repository for the OpenAI API.
func NewOpenAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	if cfg.OpenAI.MaxRequestPerMinute <= 0 {
		return nil, fmt.Errorf("openai max_request_per_minute must be positive")
	}
	tokenLimiter := ratelimit.NewTokenLimiter(cfg.OpenAI.MaxTokenPerMinute)
	secondsPerRequest := time.Minute / time.Duration(cfg.OpenAI.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &openAIRepository{
		client:         &http.Client{Timeout: 90 * time.Second},
		cfg:            cfg,
		logger:         log,
		tokenLimiter:   tokenLimiter,
		requestLimiter: requestLimiter,
	}, nil
}

// sendRequest sends a single-message chat completion request and returns the
// generated text. It waits on the request limiter before sending and feeds
// the token limiter with the reported usage afterwards.
func (r *openAIRepository) sendRequest(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("request limiter wait failed: %w", err)
	}

	reqBody := dto.OpenAPIReq{
		Model:     r.cfg.OpenAI.Model,
		Messages:  []dto.Message{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.OpenAI.BaseURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.OpenAI.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-OK response from OpenAI API: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var openAIResp dto.OpenAPIRes
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", fmt.Errorf("failed to decode OpenAI response: %w", err)
	}

	if openAIResp.Usage.TotalTokens > r.cfg.OpenAI.MaxTokenPerMinute/2 {
		r.logger.Warn("Token has exceeded 50% of the limit", logger.IntField("remaining", r.tokenLimiter.GetRemaining()))
	}
	if err := r.tokenLimiter.Wait(ctx, openAIResp.Usage.TotalTokens); err != nil {
		return "", fmt.Errorf("token limiter wait failed: %w", err)
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no content found in OpenAI response")
	}
	return openAIResp.Choices[0].Message.Content, nil
}

// GenerateNewsSummary produces a short summary for a news record. When the
// model echoes the prompt or returns nothing, a templated summary is
// returned instead so the caller still gets usable text.
func (r *openAIRepository) GenerateNewsSummary(ctx context.Context, symbol, title, url, articleContent string) (string, error) {
	prompt := BuildNewsSummaryPrompt(symbol, title, url, articleContent, r.cfg.Quality.TargetLanguage)
	raw, err := r.sendRequest(ctx, prompt, summaryMaxTokens)
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
func (r *openAIRepository) TranslateTitle(ctx context.Context, title string) (string, error) {
	prompt := BuildTitleTranslationPrompt(title, r.cfg.Quality.TargetLanguage)
	raw, err := r.sendRequest(ctx, prompt, translationMaxTokens)
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
func (r *openAIRepository) GenerateSentimentAnalysis(ctx context.Context, sentiment *entity.MarketSentiment) (string, error) {
	prompt := BuildSentimentAnalysisPrompt(sentiment, r.cfg.Quality.TargetLanguage)
	raw, err := r.sendRequest(ctx, prompt, sentimentMaxTokens)
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
func (r *openAIRepository) GenerateExpertAnalysis(ctx context.Context, signal *entity.TradingSignal) (string, error) {
	prompt := BuildExpertAnalysisPrompt(signal, r.cfg.Quality.TargetLanguage)
	raw, err := r.sendRequest(ctx, prompt, expertMaxTokens)
	if err != nil {
		return "", err
	}

	analysis := utils.CleanGeneratedText(raw)
	if analysis == "" || utils.ContainsAny(analysis, expertPromptFragments) {
		return "", fmt.Errorf("generated expert analysis is empty or echoes the prompt")
	}
	return analysis, nil
}
