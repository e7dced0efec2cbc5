package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-news-curator/internal/entity"
	"golang-news-curator/pkg/utils"
)

// FormatQualityPassMessage formats a finished quality pass into a Markdown
// string for Telegram.
func FormatQualityPassMessage(history *entity.QualityPassHistory) string {
	var builder strings.Builder

	var statusIcon string
	switch history.Status {
	case entity.QualityPassStatusCompleted:
		statusIcon = "✅"
	case entity.QualityPassStatusFailed:
		statusIcon = "❌"
	default:
		statusIcon = "⏳"
	}

	status := history.Status
	if status != "" {
		status = strings.ToUpper(status[:1]) + status[1:]
	}
	builder.WriteString(fmt.Sprintf("%s *Quality Pass %s*\n\n", statusIcon, status))
	builder.WriteString(fmt.Sprintf("🗂 *Table:* `%s`\n", history.TargetTable))
	builder.WriteString(fmt.Sprintf("🔢 *Limit:* %d\n", history.ItemLimit))
	if history.DryRun {
		builder.WriteString("🔍 *Mode:* dry run (check only)\n")
	}
	builder.WriteString("\n")

	builder.WriteString(fmt.Sprintf("📰 *News repaired:* %d\n", history.NewsProcessed))
	builder.WriteString(fmt.Sprintf("📊 *Sentiment repaired:* %d\n", history.SentimentProcessed))
	builder.WriteString(fmt.Sprintf("📈 *Signals repaired:* %d\n", history.SignalsProcessed))

	if history.ErrorMessage.Valid && history.ErrorMessage.String != "" {
		builder.WriteString(fmt.Sprintf("\n⚠️ *Error:* %s\n", history.ErrorMessage.String))
	}

	builder.WriteString(fmt.Sprintf("\n📅 _%s_\n", utils.PrettyDate(history.StartedAt)))

	return builder.String()
}

// FormatErrorAlertMessage formats an operational error for Telegram.
func FormatErrorAlertMessage(t time.Time, errType string, errMsg string, data string) string {
	return fmt.Sprintf(`📛 [ERROR ALERT]
%s
🔧 %s
⚠️ %s

📄 Data: %s
`, utils.PrettyDate(t), errType, errMsg, data)
}
