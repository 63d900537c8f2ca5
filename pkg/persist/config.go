package persist

import (
	"encoding/json"
	"errors"
	"os"
)

// Config are the knobs the statistics depend on.
type Config struct {
	WorkDayHours float64 `json:"work_day_hours"`
	FreeHolidays bool    `json:"free_holidays"`
}

func DefaultConfig() Config {
	return Config{WorkDayHours: 8.0, FreeHolidays: true}
}

func ConfigPath(file string) string { return file + "-config" }

// LoadConfig reads the JSON config sidecar. A missing file or unreadable
// content falls back to the defaults; only real I/O failures are errors.
func LoadConfig(path string) (Config, error) {
	bs, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}
	var c Config
	if err := json.Unmarshal(bs, &c); err != nil {
		return DefaultConfig(), nil
	}
	return c, nil
}

func SaveConfig(path string, c Config) error {
	bs, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0600)
}
