// Load envs from .env
// Load keyword rules from YAML
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"go-remote-jobs-bot/internal/filter"
	"go-remote-jobs-bot/internal/score"
)

type Config struct {
	TelegramToken string
	ChannelID     string // "@channel" or numeric chat ID
	AdminID       int64

	PostsPerBatch int
	CronSchedule  string
	Port          string

	StoragePath string
	RulesPath   string

	TopTierBonus int
	MidTierBonus int
	PostDelay    time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChannelID:     os.Getenv("TELEGRAM_CHANNEL_ID"),
		PostsPerBatch: envInt("POSTS_PER_BATCH", 5),
		CronSchedule:  envDefault("CRON_SCHEDULE", "0 */3 * * *"), // every 3 hours
		Port:          envDefault("PORT", "3000"),
		StoragePath:   envDefault("STORAGE_PATH", "posted_jobs.json"),
		RulesPath:     envDefault("RULES_PATH", "configs/rules.yaml"),
		TopTierBonus:  envInt("TOP_TIER_BONUS", 4),
		MidTierBonus:  envInt("MID_TIER_BONUS", 2),
		PostDelay:     time.Duration(envInt("POST_DELAY_SECONDS", 2)) * time.Second,
	}

	if adminID := os.Getenv("ADMIN_TELEGRAM_ID"); adminID != "" {
		id, err := strconv.ParseInt(adminID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid ADMIN_TELEGRAM_ID: %v", err)
		}
		cfg.AdminID = id
	}

	// Validate required fields
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.ChannelID == "" {
		log.Fatal("TELEGRAM_CHANNEL_ID is required")
	}
	if cfg.AdminID == 0 {
		log.Fatal("ADMIN_TELEGRAM_ID is required")
	}
	if cfg.PostsPerBatch <= 0 {
		log.Fatal("POSTS_PER_BATCH must be positive")
	}

	return cfg
}

// rulesFile is the YAML shape of the keyword rule tables. Sections left
// out keep their built-in defaults.
type rulesFile struct {
	Filter *filter.Rules `yaml:"filter"`
	Score  *score.Tables `yaml:"score"`
}

// LoadRules returns the filter and scoring tables, overridden from the
// rules file when it exists. A malformed file is fatal, a missing one is
// not.
func LoadRules(path string) (filter.Rules, score.Tables) {
	rules := filter.DefaultRules()
	tables := score.DefaultTables()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: could not read rules file %s: %v", path, err)
		}
		return rules, tables
	}

	rf := rulesFile{Filter: &rules, Score: &tables}
	if err := yaml.Unmarshal(data, &rf); err != nil {
		log.Fatalf("Error parsing rules file %s: %v", path, err)
	}

	log.Printf("🔧 Loaded keyword rules from %s", path)
	return rules, tables
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}
