package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	StorePath       string
	SharedSecret    string
	DiscordToken    string
	GuildID         string
	IntakeChannelID string
	StatusChannelID string
	StatusText      string
}

// ParseFlags validates flags and fills defaults from the environment
func ParseFlags(args []string) (Config, error) {
	// A local .env is a convenience for dev; absence is fine.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("lookout", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorePath, "f", "", "Record store file path")

	// Secrets and Discord wiring (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SharedSecret, "secret", "", "Intake shared secret (prefer env)")
	fs.StringVar(&cfg.DiscordToken, "token", "", "Discord bot token (prefer env)")
	fs.StringVar(&cfg.GuildID, "guild", "", "Discord guild ID for command registration (empty = global)")
	fs.StringVar(&cfg.IntakeChannelID, "channel", "", "Discord channel for intake cards")
	fs.StringVar(&cfg.StatusChannelID, "status-channel", "", "Discord channel for the status display (optional)")
	fs.StringVar(&cfg.StatusText, "status-text", "", "Desired status display text (optional)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
	}
	if cfg.StorePath == "" {
		cfg.StorePath = "lookout.json"
	}

	// Secrets - MUST be provided
	if cfg.SharedSecret == "" {
		cfg.SharedSecret = os.Getenv("LOOKOUT_SECRET")
	}
	if cfg.SharedSecret == "" {
		return Config{}, errors.New("LOOKOUT_SECRET required")
	}

	if cfg.DiscordToken == "" {
		cfg.DiscordToken = os.Getenv("DISCORD_TOKEN")
	}
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN required")
	}

	if cfg.IntakeChannelID == "" {
		cfg.IntakeChannelID = os.Getenv("INTAKE_CHANNEL_ID")
	}
	if cfg.IntakeChannelID == "" {
		return Config{}, errors.New("INTAKE_CHANNEL_ID required")
	}

	if cfg.GuildID == "" {
		cfg.GuildID = os.Getenv("GUILD_ID")
	}
	if cfg.StatusChannelID == "" {
		cfg.StatusChannelID = os.Getenv("STATUS_CHANNEL_ID")
	}
	if cfg.StatusText == "" {
		cfg.StatusText = os.Getenv("STATUS_TEXT")
	}

	return cfg, nil
}
