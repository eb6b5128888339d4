package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables holding secrets and database identifiers.
const (
	EnvAPIKey    = "NOTION_API_KEY"
	EnvTasksDB   = "TASKS_DB_ID"
	EnvWeeklyDB  = "WEEKLY_DB_ID"
	EnvMonthlyDB = "MONTHLY_DB_ID"

	// EnvConfigFile optionally points at a TOML file overriding the
	// default property names.
	EnvConfigFile = "LINKA_CONFIG"
)

// ErrMissingEnv indicates required environment variables are absent.
var ErrMissingEnv = errors.New("missing required environment variables")

// Properties maps this tool's field roles onto the property names of
// the user's databases. Names are case-sensitive.
type Properties struct {
	TaskDueDate     string `toml:"task_due_date"`
	TaskTitle       string `toml:"task_title"`
	TaskWeeklyLink  string `toml:"task_weekly_link"`
	TaskMonthlyLink string `toml:"task_monthly_link"`
	TaskWeekNumber  string `toml:"task_week_number"`
	TaskMonth       string `toml:"task_month"`
	TaskYear        string `toml:"task_year"`
	WeeklyTitle     string `toml:"weekly_title"`
	WeeklyYear      string `toml:"weekly_year"`
	MonthlyTitle    string `toml:"monthly_title"`
	MonthlyYear     string `toml:"monthly_year"`
}

// Config is the full configuration, resolved once at startup and passed
// by reference into each component.
type Config struct {
	APIKey    string
	TasksDB   string
	WeeklyDB  string
	MonthlyDB string
	Props     Properties
}

// DefaultProperties returns the default property-name mapping.
func DefaultProperties() Properties {
	return Properties{
		TaskDueDate:     "Due Date",
		TaskTitle:       "Tasks",
		TaskWeeklyLink:  "Weekly Link",
		TaskMonthlyLink: "Monthly Link",
		TaskWeekNumber:  "Week Number",
		TaskMonth:       "Month",
		TaskYear:        "Year",
		WeeklyTitle:     "Week Number",
		WeeklyYear:      "Year",
		MonthlyTitle:    "Month",
		MonthlyYear:     "Year",
	}
}

// FromEnv builds the configuration from the environment. Secrets and
// database identifiers are required; the property mapping defaults and
// may be overridden by a TOML file named in LINKA_CONFIG.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey:    os.Getenv(EnvAPIKey),
		TasksDB:   os.Getenv(EnvTasksDB),
		WeeklyDB:  os.Getenv(EnvWeeklyDB),
		MonthlyDB: os.Getenv(EnvMonthlyDB),
		Props:     DefaultProperties(),
	}

	var missing []string
	for _, v := range []struct {
		name, value string
	}{
		{EnvAPIKey, cfg.APIKey},
		{EnvTasksDB, cfg.TasksDB},
		{EnvWeeklyDB, cfg.WeeklyDB},
		{EnvMonthlyDB, cfg.MonthlyDB},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		props, err := loadProperties(path)
		if err != nil {
			return nil, err
		}
		cfg.Props = props
	}

	return cfg, nil
}

// loadProperties reads a property mapping from a TOML file. Names left
// out of the file keep their defaults.
func loadProperties(path string) (Properties, error) {
	props := DefaultProperties()
	if _, err := toml.DecodeFile(path, &props); err != nil {
		return Properties{}, fmt.Errorf("failed to load property mapping from %s: %w", path, err)
	}
	return props, nil
}
