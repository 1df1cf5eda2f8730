// Package publisher renders postings into channel messages, sends them,
// and owns the write side of the dedup store.
package publisher

import (
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-remote-jobs-bot/internal/dedup"
	"go-remote-jobs-bot/internal/models"
)

// Sender is the one tgbotapi method we need; *tgbotapi.BotAPI satisfies it
// and tests inject a fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Publisher posts messages to one configured channel and records each
// successful post in the dedup store before moving on.
type Publisher struct {
	sender   Sender
	channel  string // "@channelname" or a numeric chat ID
	store    *dedup.Store
	throttle time.Duration
}

func New(sender Sender, channel string, store *dedup.Store, throttle time.Duration) *Publisher {
	return &Publisher{
		sender:   sender,
		channel:  channel,
		store:    store,
		throttle: throttle,
	}
}

// Throttle is the minimum delay to keep between successive posts so the
// messaging API doesn't return 429s.
func (p *Publisher) Throttle() time.Duration {
	return p.throttle
}

// Publish sends one posting to the channel. Success records both dedup
// keys and flushes; failure logs and leaves the posting eligible for a
// later cycle.
func (p *Publisher) Publish(job models.JobPosting, priority int) bool {
	msg := p.newChannelMessage(FormatMessage(job, priority))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := p.sender.Send(msg); err != nil {
		log.Printf("❌ Error posting job %s: %v", job.ID, err)
		return false
	}

	p.store.Add(job.ID, dedup.CompositeKey(job.ID, job.URL))
	log.Printf("✅ Posted: %s at %s (Priority: %d)", job.Title, job.Company, priority)
	return true
}

func (p *Publisher) newChannelMessage(text string) tgbotapi.MessageConfig {
	if strings.HasPrefix(p.channel, "@") {
		return tgbotapi.NewMessageToChannel(p.channel, text)
	}
	chatID, err := strconv.ParseInt(p.channel, 10, 64)
	if err != nil {
		// Validated at startup; a bad value here still yields a send
		// error rather than a crash
		log.Printf("⚠️ Invalid channel ID %q: %v", p.channel, err)
	}
	return tgbotapi.NewMessage(chatID, text)
}
