package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings holds the user-tunable values read from the TOML settings file.
type Settings struct {
	MaxActionPoints int    `toml:"max_action_points"`
	Language        string `toml:"language"`
	ServerPort      string `toml:"server_port"`
}

// DefaultSettings returns the settings used when no file is provided.
func DefaultSettings() Settings {
	return Settings{
		MaxActionPoints: DefaultMaxActionPoints,
		Language:        DefaultLanguage,
		ServerPort:      DefaultPort,
	}
}

// LoadSettings reads path on top of the defaults and validates the result.
// A missing file is not an error: the defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	log := slog.With(LogKeyComponent, CompSettings, LogKeyPath, path)

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(MsgSettingsNone)
			return DefaultSettings(), nil
		}
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return Settings{}, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
		}
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Settings{}, fmt.Errorf("%s: %s", ErrSettingsUnknown, strings.Join(keys, ", "))
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	log.Debug(MsgSettingsLoad,
		LogKeyAP, s.MaxActionPoints,
		LogKeyLang, s.Language,
		LogKeyPort, s.ServerPort,
	)
	return s, nil
}

// Validate checks every field against its allowed range.
func (s Settings) Validate() error {
	if s.MaxActionPoints < 0 {
		return errors.New(ErrMaxAPNegative)
	}
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrLangUnsupported, s.Language)
	}
	return ValidatePort(s.ServerPort)
}

// ValidatePort checks that port is a decimal number within [MinPort, MaxPort].
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPortNumber, err)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}
