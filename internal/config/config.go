package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"VitalSentinel/internal/model"
	"VitalSentinel/internal/tier"

	"gopkg.in/yaml.v3"
)

// Config holds all daemon configuration.
type Config struct {
	Tick struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"tick"`
	Ledger struct {
		StateFile       string               `yaml:"state_file"`
		DailyTokenLimit int64                `yaml:"daily_token_limit"`
		Thresholds      model.TierThresholds `yaml:"thresholds"`
	} `yaml:"ledger"`
	Decisions struct {
		Dir string `yaml:"dir"`
	} `yaml:"decisions"`
	Agent struct {
		InboxFile   string   `yaml:"inbox_file"`
		WakeCommand []string `yaml:"wake_command"`
		ProcessName string   `yaml:"process_name"`
	} `yaml:"agent"`
	Health struct {
		URL string `yaml:"url"`
	} `yaml:"health"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Report struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"report"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.Ledger.StateFile = v
	}
	if v := os.Getenv("DECISIONS_DIR"); v != "" {
		cfg.Decisions.Dir = v
	}
	if v := os.Getenv("INBOX_FILE"); v != "" {
		cfg.Agent.InboxFile = v
	}
	if v := os.Getenv("WAKE_COMMAND"); v != "" {
		cfg.Agent.WakeCommand = strings.Fields(v)
	}
	if v := os.Getenv("WATCHED_PROCESS"); v != "" {
		cfg.Agent.ProcessName = v
	}
	if v := os.Getenv("HEALTH_URL"); v != "" {
		cfg.Health.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("TICK_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tick.IntervalSeconds = n
		}
	}
	if v := os.Getenv("DAILY_TOKEN_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Ledger.DailyTokenLimit = n
		}
	}

	// Defaults
	if cfg.Tick.IntervalSeconds == 0 {
		cfg.Tick.IntervalSeconds = 30
	}
	if cfg.Ledger.StateFile == "" {
		cfg.Ledger.StateFile = "data/resource_state.json"
	}
	if cfg.Ledger.DailyTokenLimit == 0 {
		cfg.Ledger.DailyTokenLimit = 2_000_000
	}
	if cfg.Ledger.Thresholds == (model.TierThresholds{}) {
		cfg.Ledger.Thresholds = tier.DefaultThresholds
	}
	if cfg.Decisions.Dir == "" {
		cfg.Decisions.Dir = "data/decisions"
	}
	if cfg.Agent.InboxFile == "" {
		cfg.Agent.InboxFile = "data/agent_inbox.log"
	}
	if cfg.Report.DailyCron == "" {
		cfg.Report.DailyCron = "0 0 9 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/vitalsentinel.db"
	}

	return cfg, nil
}

// Validate checks required fields and threshold ordering.
func (c *Config) Validate() error {
	if len(c.Agent.WakeCommand) == 0 {
		return fmt.Errorf("agent.wake_command is required")
	}
	if c.Tick.IntervalSeconds < 1 {
		return fmt.Errorf("tick.interval_seconds must be positive")
	}
	th := c.Ledger.Thresholds
	if !(th.Rich > th.Normal && th.Normal > th.Tight && th.Tight > th.Danger && th.Danger > 0) {
		return fmt.Errorf("ledger.thresholds must be strictly descending and positive")
	}
	return nil
}
