package strategy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/news"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/repository"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
)

// urlLookupItems is how many fresh items the chain is asked for when a
// record's URL needs to be restored.
const urlLookupItems = 5

// NewsProvider is the slice of the news chain the strategy needs to restore
// missing article URLs.
type NewsProvider interface {
	GetNews(ctx context.Context, symbol, companyName string, maxItems int) []news.Item
}

// NewsRemediationStrategy repairs market news rows saved without a summary:
// it resolves the symbol, translates English titles, restores the URL and
// generates a summary. Rows whose symbol cannot be guessed are parked under
// the review sentinel and left out of later passes.
type NewsRemediationStrategy struct {
	cfg      *config.Config
	logger   *logger.Logger
	newsRepo repository.NewsRecordRepository
	aiRepo   repository.AIRepository
	provider NewsProvider
	client   *http.Client
}

// NewNewsRemediationStrategy creates a new instance of NewsRemediationStrategy.
func NewNewsRemediationStrategy(cfg *config.Config, logger *logger.Logger, newsRepo repository.NewsRecordRepository, aiRepo repository.AIRepository, provider NewsProvider) *NewsRemediationStrategy {
	timeout := cfg.News.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NewsRemediationStrategy{
		cfg:      cfg,
		logger:   logger,
		newsRepo: newsRepo,
		aiRepo:   aiRepo,
		provider: provider,
		client:   &http.Client{Timeout: timeout},
	}
}

// GetTable returns the table this strategy repairs.
func (s *NewsRemediationStrategy) GetTable() entity.QualityTable {
	return entity.QualityTableNews
}

// Execute remediates up to limit deficient news records.
func (s *NewsRemediationStrategy) Execute(ctx context.Context, limit int) (int, error) {
	records, err := s.newsRepo.FindDeficient(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to find deficient news records: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("No deficient news records found")
		return 0, nil
	}

	processed := 0
	for i := range records {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		repaired, err := s.remediate(ctx, &records[i])
		if err != nil {
			s.logger.Error("Failed to remediate news record", logger.ErrorField(err), logger.Field("id", records[i].ID))
		} else if repaired {
			processed++
		}
		pause(ctx, s.cfg.Quality.PauseBetweenItems)
	}

	s.logger.Info("News remediation finished",
		logger.IntField("deficient", len(records)),
		logger.IntField("processed", processed))
	return processed, nil
}

func (s *NewsRemediationStrategy) remediate(ctx context.Context, record *entity.MarketNews) (bool, error) {
	symbol := record.Symbol
	if symbol == "" {
		guessed := news.ExtractSymbol(record.Title, record.Summary)
		if guessed == "" {
			if err := s.newsRepo.UpdateSymbol(ctx, record.ID, entity.SymbolReview); err != nil {
				return false, fmt.Errorf("failed to park news record for review: %w", err)
			}
			s.logger.Info("News record parked for manual symbol review", logger.Field("id", record.ID))
			return false, nil
		}
		if err := s.newsRepo.UpdateSymbol(ctx, record.ID, guessed); err != nil {
			return false, fmt.Errorf("failed to update news symbol: %w", err)
		}
		s.logger.Info("News symbol resolved", logger.Field("id", record.ID), logger.StringField("symbol", guessed))
		symbol = guessed
	}

	// Translation is best effort. A failed call keeps the original title.
	title := record.Title
	if utils.IsEnglishText(title) && !strings.EqualFold(s.cfg.Quality.TargetLanguage, "English") {
		translated, err := s.aiRepo.TranslateTitle(ctx, title)
		if err != nil {
			s.logger.Warn("Title translation failed, keeping original", logger.ErrorField(err), logger.Field("id", record.ID))
		} else if translated != title {
			if err := s.newsRepo.UpdateTitle(ctx, record.ID, translated); err != nil {
				return false, fmt.Errorf("failed to update news title: %w", err)
			}
			title = translated
		}
	}

	// The synthesized fallback is a quote page, not an article, so it is
	// stored for the reader but never scraped for content.
	url := record.URL
	contentURL := ""
	if strings.HasPrefix(url, "http") {
		contentURL = url
	} else {
		fresh, article := s.lookupURL(ctx, symbol, title, record.Source)
		if fresh != "" && fresh != url {
			if err := s.newsRepo.UpdateURL(ctx, record.ID, fresh); err != nil {
				return false, fmt.Errorf("failed to update news url: %w", err)
			}
			url = fresh
		}
		if article {
			contentURL = fresh
		}
	}

	articleContent := ""
	if contentURL != "" {
		content, err := s.fetchArticleContent(ctx, contentURL)
		if err != nil {
			s.logger.Warn("Failed to fetch article content", logger.ErrorField(err), logger.StringField("url", contentURL))
		} else {
			articleContent = content
		}
	}

	summary, err := s.aiRepo.GenerateNewsSummary(ctx, symbol, title, url, articleContent)
	if err != nil {
		return false, fmt.Errorf("failed to generate news summary: %w", err)
	}
	if !s.acceptSummary(summary, record.Summary) {
		s.logger.Warn("Generated summary rejected",
			logger.Field("id", record.ID),
			logger.IntField("length", utf8.RuneCountInString(summary)))
		return false, nil
	}
	if err := s.newsRepo.UpdateSummary(ctx, record.ID, summary); err != nil {
		return false, fmt.Errorf("failed to update news summary: %w", err)
	}
	return true, nil
}

// acceptSummary enforces the non-regression rule: a candidate must reach the
// configured minimum length and be strictly longer than what it replaces.
func (s *NewsRemediationStrategy) acceptSummary(candidate, previous string) bool {
	if candidate == "" {
		return false
	}
	n := utf8.RuneCountInString(candidate)
	if n < s.cfg.Quality.MinSummaryLength {
		return false
	}
	return n > utf8.RuneCountInString(previous)
}

// lookupURL asks the chain for fresh items and prefers one whose title
// matches the record. No match falls back to the deterministic quote URL;
// the second return reports whether the URL points at a real article.
func (s *NewsRemediationStrategy) lookupURL(ctx context.Context, symbol, title, source string) (string, bool) {
	loweredTitle := strings.ToLower(title)
	for _, item := range s.provider.GetNews(ctx, symbol, "", urlLookupItems) {
		if item.URL == "" {
			continue
		}
		loweredItem := strings.ToLower(item.Title)
		if loweredItem == loweredTitle || strings.Contains(loweredItem, loweredTitle) || strings.Contains(loweredTitle, loweredItem) {
			return item.URL, true
		}
	}
	return news.FallbackURL(symbol, source), false
}

func (s *NewsRemediationStrategy) fetchArticleContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for article: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch article, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read article body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}
	content := doc.Content()
	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse article: %w", err)
	}

	content = strings.TrimSpace(docHTML.Text())
	content = strings.ReplaceAll(content, "\n", "")
	content = strings.ReplaceAll(content, "\t", "")
	content = strings.ReplaceAll(content, "\r", "")
	content = strings.ReplaceAll(content, "\f", "")
	return utils.SafeText(content), nil
}
