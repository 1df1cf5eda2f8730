// Package bot handles the administrative Telegram commands. These are
// thin triggers into the pipeline and publisher; none of the ranking
// logic lives here.
package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-remote-jobs-bot/internal/dedup"
	"go-remote-jobs-bot/internal/models"
	"go-remote-jobs-bot/internal/pipeline"
	"go-remote-jobs-bot/internal/publisher"
)

const helpText = `🤖 <b>Admin Commands</b>

/stats - View bot statistics
/fetch - Manually fetch and post jobs
/post - Manual job posting
Format:
/post
Job Title
Company Name
Full-time
https://apply-link.com

/clear - Clear job history (use carefully!)
/help - Show this help

<i>Bot automatically posts jobs on the configured schedule</i>`

// Handler dispatches admin commands received over long polling.
type Handler struct {
	api       *tgbotapi.BotAPI
	adminID   int64
	pipe      *pipeline.Pipeline
	publisher *publisher.Publisher
	store     *dedup.Store
	batchSize int
	nextRun   func() time.Time
}

func NewHandler(api *tgbotapi.BotAPI, adminID int64, pipe *pipeline.Pipeline, pub *publisher.Publisher, store *dedup.Store, batchSize int, nextRun func() time.Time) *Handler {
	return &Handler{
		api:       api,
		adminID:   adminID,
		pipe:      pipe,
		publisher: pub,
		store:     store,
		batchSize: batchSize,
		nextRun:   nextRun,
	}
}

// Run consumes updates until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			h.handleCommand(ctx, update.Message)
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd := msg.Command()

	if msg.From == nil || msg.From.ID != h.adminID {
		// /help stays silent for strangers, everything else gets an
		// explicit denial
		if cmd != "help" {
			h.reply(msg.Chat.ID, "❌ Unauthorized. Admin only.")
		}
		return
	}

	switch cmd {
	case "post":
		h.handlePost(msg)
	case "stats":
		h.handleStats(msg)
	case "fetch":
		h.handleFetch(ctx, msg)
	case "clear":
		h.store.Clear()
		h.reply(msg.Chat.ID, "✅ Job history cleared!")
	case "help":
		h.replyHTML(msg.Chat.ID, helpText)
	}
}

// handlePost publishes one ad-hoc posting from a 4-line command body.
func (h *Handler) handlePost(msg *tgbotapi.Message) {
	var lines []string
	for _, l := range strings.Split(msg.CommandArguments(), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSpace(l))
		}
	}

	if len(lines) < 4 {
		h.reply(msg.Chat.ID, "❌ Invalid format. Use:\n/post\nJob Title\nCompany Name\nJob Type\nApply URL")
		return
	}

	job := models.JobPosting{
		ID:       fmt.Sprintf("manual_%d", time.Now().UnixMilli()),
		Title:    lines[0],
		Company:  lines[1],
		Type:     lines[2],
		URL:      lines[3],
		Location: "Remote",
		Source:   "Manual",
	}

	if h.publisher.Publish(job, 0) {
		h.reply(msg.Chat.ID, "✅ Job posted successfully!")
	} else {
		h.reply(msg.Chat.ID, "❌ Error: failed to post job, see logs")
	}
}

func (h *Handler) handleStats(msg *tgbotapi.Message) {
	// Two keys are recorded per posting
	posted := h.store.Len() / 2

	next := "Unknown"
	if t := h.nextRun(); !t.IsZero() {
		next = t.Format("03:04 PM")
	}

	stats := fmt.Sprintf(`📊 <b>Bot Statistics</b>

💼 Total jobs posted: %d
⏰ Next scheduled run: %s
📅 Posts per batch: %d

✅ Bot is running`, posted, next, h.batchSize)

	h.replyHTML(msg.Chat.ID, stats)
}

func (h *Handler) handleFetch(ctx context.Context, msg *tgbotapi.Message) {
	h.reply(msg.Chat.ID, "🔍 Fetching jobs...")
	h.pipe.Run(ctx)
	h.reply(msg.Chat.ID, "✅ Fetch completed!")
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("⚠️ Failed to send reply: %v", err)
	}
}

func (h *Handler) replyHTML(chatID int64, text string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	if _, err := h.api.Send(m); err != nil {
		log.Printf("⚠️ Failed to send reply: %v", err)
	}
}
