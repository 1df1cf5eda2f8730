package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"

	"go-remote-jobs-bot/internal/bot"
	"go-remote-jobs-bot/internal/config"
	"go-remote-jobs-bot/internal/dedup"
	"go-remote-jobs-bot/internal/filter"
	"go-remote-jobs-bot/internal/health"
	"go-remote-jobs-bot/internal/pipeline"
	"go-remote-jobs-bot/internal/publisher"
	"go-remote-jobs-bot/internal/score"
	"go-remote-jobs-bot/internal/selector"
	"go-remote-jobs-bot/internal/source"
)

func main() {
	log.Println("🤖 Remote Dev Jobs Bot starting...")

	cfg := config.Load()
	rules, tables := config.LoadRules(cfg.RulesPath)

	// Load previous job history
	store := dedup.Open(cfg.StoragePath)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram bot: %v", err)
	}
	log.Printf("🤖 Authorized as @%s", api.Self.UserName)

	sources := []source.Source{
		source.NewRemotive(),
		source.NewWeWorkRemotely(),
		source.NewUnstop(),
		source.NewGreenhouse(),
		source.NewLever(),
		source.NewSmartRecruiters(),
		source.NewWorkday(),
	}

	flt := filter.New(rules, store)
	scorer := score.New(tables, cfg.TopTierBonus, cfg.MidTierBonus)
	pub := publisher.New(api, cfg.ChannelID, store, cfg.PostDelay)
	pipe := pipeline.New(sources, flt, scorer, pub, cfg.PostsPerBatch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduled posting runs on the channel's local time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Fatalf("❌ Failed to load timezone: %v", err)
	}
	c := cron.New(cron.WithLocation(loc))
	entryID, err := c.AddFunc(cfg.CronSchedule, func() {
		log.Println("\n⏰ Scheduled job fetch triggered")
		pipe.Run(ctx)
	})
	if err != nil {
		log.Fatalf("❌ Invalid CRON_SCHEDULE %q: %v", cfg.CronSchedule, err)
	}
	c.Start()

	nextRun := func() time.Time { return c.Entry(entryID).Next }
	handler := bot.NewHandler(api, cfg.AdminID, pipe, pub, store, cfg.PostsPerBatch, nextRun)
	go handler.Run(ctx)

	// Health server binds immediately so the platform's port check passes
	router := health.NewRouter(func() {
		log.Println("🔄 Manual fetch triggered via HTTP endpoint")
		pipe.Run(ctx)
	})
	go func() {
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatalf("❌ Health server failed: %v", err)
		}
	}()

	log.Println("✅ Bot started successfully!")
	log.Printf("📢 Channel ID: %s", cfg.ChannelID)
	log.Printf("👤 Admin ID: %d", cfg.AdminID)
	log.Printf("⏰ Schedule: %s", cfg.CronSchedule)
	log.Printf("📊 Posts per batch: %d (min priority %d)", cfg.PostsPerBatch, selector.MinPriority)

	// Populate the channel without waiting for the first tick
	go func() {
		log.Println("🚀 Running initial job fetch...")
		pipe.Run(ctx)
	}()

	// Flush the posted history before exiting
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("\n👋 Shutting down bot...")
	cancel()
	cronCtx := c.Stop()
	<-cronCtx.Done()
	store.Flush()
}
