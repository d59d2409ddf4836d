// Package i18n localizes player-facing clock messages using embedded
// go-i18n message files (locales/active.<lang>.json).
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/gametime"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

const localeDir = "locales"

// Translator renders messages in one language. It implements gametime.Narrator.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
	langs     []string
}

// NewTranslator loads the embedded locales and selects the closest match
// to lang. Unknown languages resolve to English.
func NewTranslator(lang string) (*Translator, error) {
	bundle, langs, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tr := &Translator{bundle: bundle, langs: langs}
	tr.SetLanguage(lang)
	return tr, nil
}

// loadBundle registers every active.<lang>.json file found in the embedded FS.
func loadBundle() (*i18n.Bundle, []string, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			return nil, nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detectedLangs = append(detectedLangs, langCode)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return bundle, detectedLangs, nil
}

// SetLanguage switches the translator to the closest supported match of lang.
func (t *Translator) SetLanguage(lang string) {
	tags := t.bundle.LanguageTags()
	matcher := language.NewMatcher(tags)
	_, idx, _ := matcher.Match(language.Make(lang))

	t.lang = tags[idx].String()
	t.localizer = i18n.NewLocalizer(t.bundle, t.lang)
}

// Language returns the resolved language tag in use.
func (t *Translator) Language() string { return t.lang }

// Languages lists the locale codes found in the embedded files.
func (t *Translator) Languages() []string { return t.langs }

// Msg translates key with optional template data. A missing key is returned
// as-is so the gap is visible rather than silently blank.
func (t *Translator) Msg(key string, data map[string]any) string {
	msg, err := t.localize(key, data, nil)
	if err != nil {
		return key
	}
	return msg
}

// Period returns the localized name of a time-of-day category.
func (t *Translator) Period(p gametime.TimeOfDay) string {
	var key string
	switch p {
	case gametime.Morning:
		key = config.TKeyTimeMorning
	case gametime.Afternoon:
		key = config.TKeyTimeAfternoon
	case gametime.Evening:
		key = config.TKeyTimeEvening
	default:
		key = config.TKeyTimeNight
	}
	msg, err := t.localize(key, nil, nil)
	if err != nil {
		return p.String()
	}
	return msg
}

func (t *Translator) Waited(hours, hour int) string {
	return t.plural(config.TKeyWaitSameDay, hours, map[string]any{"Count": hours, "Hour": hour},
		func() string { return gametime.EnglishNarrator{}.Waited(hours, hour) })
}

func (t *Translator) NewDay(hours, day int) string {
	return t.plural(config.TKeyWaitNewDay, hours, map[string]any{"Count": hours, "Day": day},
		func() string { return gametime.EnglishNarrator{}.NewDay(hours, day) })
}

func (t *Translator) InvalidDuration(minHours int) string {
	return t.plural(config.TKeyErrDuration, minHours, map[string]any{"Count": minHours},
		func() string { return gametime.EnglishNarrator{}.InvalidDuration(minHours) })
}

func (t *Translator) InvalidTarget(minHour, maxHour int) string {
	msg, err := t.localize(config.TKeyErrTarget, map[string]any{"Min": minHour, "Max": maxHour}, nil)
	if err != nil {
		return gametime.EnglishNarrator{}.InvalidTarget(minHour, maxHour)
	}
	return msg
}

func (t *Translator) AlreadyAt(hour int) string {
	msg, err := t.localize(config.TKeyErrAlreadyAt, map[string]any{"Hour": hour}, nil)
	if err != nil {
		return gametime.EnglishNarrator{}.AlreadyAt(hour)
	}
	return msg
}

func (t *Translator) plural(key string, count int, data map[string]any, fallback func() string) string {
	msg, err := t.localize(key, data, count)
	if err != nil {
		return fallback()
	}
	return msg
}

func (t *Translator) localize(key string, data map[string]any, pluralCount any) (string, error) {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
		PluralCount:  pluralCount,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyLang, t.lang,
			config.LogKeyError, err,
		)
		return "", err
	}
	return msg, nil
}
