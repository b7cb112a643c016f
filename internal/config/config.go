package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bedtime-patrol/bedtime-bot/internal/domain"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// BedChannelID is the channel the bot watches for curfew violations and
	// posts the nightly report to.
	BedChannelID string

	// InsomniacsGroupID and PatrolGroupID are Slack usergroup IDs. Insomniacs
	// are the judged population; both groups get mentioned in the report.
	InsomniacsGroupID string
	PatrolGroupID     string

	// SingleTimezone skips per-user timezone resolution and uses
	// DefaultTimezone for everyone.
	SingleTimezone  bool
	DefaultTimezone string
	TimezoneRoles   map[string]string

	ReportTime      string
	BracketsWeekday string
	BracketsWeekend string

	// Resolved by Validate.
	Location   *time.Location
	ZoneByRole map[string]*time.Location
	ReportAt   domain.TimeOfDay
	Brackets   domain.BracketTable
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./bedtime.db"),
		Port:               getEnv("PORT", "3000"),
		BedChannelID:       getEnv("BED_CHANNEL_ID", ""),
		InsomniacsGroupID:  getEnv("INSOMNIACS_GROUP_ID", ""),
		PatrolGroupID:      getEnv("PATROL_GROUP_ID", ""),
		SingleTimezone:     getEnv("SINGLE_TIMEZONE", "true") == "true",
		DefaultTimezone:    getEnv("DEFAULT_TIMEZONE", domain.DefaultTimezoneName),
		TimezoneRoles:      parseRoleMap(getEnv("TIMEZONE_ROLES", "")),
		ReportTime:         getEnv("REPORT_TIME", domain.DefaultReportTime),
		BracketsWeekday:    getEnv("BRACKETS_WEEKDAY", ""),
		BracketsWeekend:    getEnv("BRACKETS_WEEKEND", ""),
	}
}

// Validate resolves timezone names, the report time and the bracket tables.
// Any failure here is a configuration error and must abort startup: serving
// with a bad timezone or an incomplete bracket table corrupts the ledger.
func (c *Config) Validate() error {
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("invalid default timezone %q: %w", c.DefaultTimezone, err)
	}
	c.Location = loc

	roles := c.TimezoneRoles
	if len(roles) == 0 {
		roles = domain.DefaultTimezoneRoles
	}
	c.ZoneByRole = make(map[string]*time.Location, len(roles))
	for role, zone := range roles {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q for role %q: %w", zone, role, err)
		}
		c.ZoneByRole[role] = l
	}

	c.ReportAt, err = domain.ParseTimeOfDay(c.ReportTime)
	if err != nil {
		return fmt.Errorf("invalid report time: %w", err)
	}

	c.Brackets = domain.DefaultBrackets()
	if c.BracketsWeekday != "" {
		c.Brackets.Weekday, err = parseBrackets(c.BracketsWeekday)
		if err != nil {
			return fmt.Errorf("invalid weekday brackets: %w", err)
		}
	}
	if c.BracketsWeekend != "" {
		c.Brackets.Weekend, err = parseBrackets(c.BracketsWeekend)
		if err != nil {
			return fmt.Errorf("invalid weekend brackets: %w", err)
		}
	}
	if err := c.Brackets.Validate(); err != nil {
		return fmt.Errorf("bracket tables: %w", err)
	}

	return nil
}

// parseBrackets parses "Name=22:00-00:00;Other=00:00-01:00" into an ordered
// bracket list.
func parseBrackets(input string) ([]domain.Bracket, error) {
	var brackets []domain.Bracket
	for _, pair := range strings.Split(input, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, span, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed bracket %q, want NAME=HH:MM-HH:MM", pair)
		}
		startStr, endStr, ok := strings.Cut(span, "-")
		if !ok {
			return nil, fmt.Errorf("malformed bracket span %q, want HH:MM-HH:MM", span)
		}
		start, err := domain.ParseTimeOfDay(strings.TrimSpace(startStr))
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseTimeOfDay(strings.TrimSpace(endStr))
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, domain.Bracket{
			Name:  strings.TrimSpace(name),
			Start: start,
			End:   end,
		})
	}
	return brackets, nil
}

// parseRoleMap parses "PST=America/Los_Angeles;EST=America/New_York".
func parseRoleMap(input string) map[string]string {
	roles := make(map[string]string)
	for _, pair := range strings.Split(input, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		role, zone, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		roles[strings.TrimSpace(role)] = strings.TrimSpace(zone)
	}
	return roles
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
