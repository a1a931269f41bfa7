package notify

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"skillra/vacancyworker/internal/crawl"
	scrapeerr "skillra/vacancyworker/pkg/errors"
)

// TelegramNotifier posts crawl summaries to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, scrapeerr.NewConfiguration("failed to init telegram bot", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (t *TelegramNotifier) NotifySummary(summary crawl.Summary) error {
	text := fmt.Sprintf(
		"📊 <b>Vacancy crawl finished</b>\n"+
			"✅ admitted: %d\n"+
			"🔁 duplicates: %d\n"+
			"💸 no salary: %d\n"+
			"⚠️ fetch failures: %d\n"+
			"⏱ duration: %s",
		summary.Admitted,
		summary.Duplicates,
		summary.NoSalary,
		summary.FetchFailures,
		summary.Duration.Round(time.Second),
	)
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML"
	if _, err := t.bot.Send(msg); err != nil {
		return scrapeerr.NewPublisher("telegram", "failed to send summary", err)
	}
	return nil
}
