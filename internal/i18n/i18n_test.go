package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/gametime"
)

// translationKeys lists every key declared in config.go.
var translationKeys = []string{
	config.TKeyWaitSameDay,
	config.TKeyWaitNewDay,
	config.TKeyErrDuration,
	config.TKeyErrTarget,
	config.TKeyErrAlreadyAt,
	config.TKeyTimeMorning,
	config.TKeyTimeAfternoon,
	config.TKeyTimeEvening,
	config.TKeyTimeNight,
	config.TKeyStatusHeader,
	config.TKeyStatusFooter,
	config.TKeyStatusDay,
	config.TKeyStatusTime,
	config.TKeyStatusAP,
	config.TKeyDemoTitle,
	config.TKeyDemoStart,
	config.TKeyDemoStep,
	config.TKeyDemoResult,
	config.TKeyDemoSuccess,
	config.TKeyDemoSpending,
	config.TKeyDemoRestored,
	config.TKeyDemoComplete,
	config.TKeyStepWaitOne,
	config.TKeyStepWaitMany,
	config.TKeyStepWaitUntil,
	config.TKeyStepMidnight,
	config.TKeyStepSpend,
	config.TKeyStepReset,
	config.TKeyStepInvalid,
}

// TestI18nIntegrity ensures every translation key defined in config.go
// exists in each locale file, and flags orphan keys.
func TestI18nIntegrity(t *testing.T) {
	defined := make(map[string]bool, len(translationKeys))
	for _, k := range translationKeys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err, "Must load active.%s.json", lang)

			var jsonMap map[string]any
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}
			for jsonKey := range jsonMap {
				assert.Truef(t, defined[jsonKey], "Key '%s' in active.%s.json is not declared in config.go", jsonKey, lang)
			}
		})
	}
}

func TestNewTranslator_DetectsLanguages(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages())
}

func TestSetLanguage_Matching(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"en", "en"},
		{"fr", "fr"},
		{"fr-CA", "fr"},
		{"de", "en"},
		{"", "en"},
		{"not a tag", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			tr, err := NewTranslator(tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Language())
		})
	}
}

func TestTranslator_English(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "You waited 1 hour. Time is now 9:00.", tr.Waited(1, 9))
	assert.Equal(t, "You waited 5 hours. Time is now 13:00.", tr.Waited(5, 13))
	assert.Equal(t, "You waited 50 hours. A new day has begun (Day 3).", tr.NewDay(50, 3))
	assert.Equal(t, "Cannot wait for less than 1 hour", tr.InvalidDuration(1))
	assert.Equal(t, "Invalid target hour. Must be between 0 and 23.", tr.InvalidTarget(0, 23))
	assert.Equal(t, "Already at 10:00", tr.AlreadyAt(10))
	assert.Equal(t, "afternoon", tr.Period(gametime.Afternoon))
}

func TestTranslator_French(t *testing.T) {
	tr, err := NewTranslator("fr")
	require.NoError(t, err)

	assert.Equal(t, "Vous avez attendu 1 heure. Il est maintenant 9:00.", tr.Waited(1, 9))
	assert.Equal(t, "Vous avez attendu 4 heures. Un nouveau jour commence (Jour 2).", tr.NewDay(4, 2))
	assert.Equal(t, "Il est déjà 8:00", tr.AlreadyAt(8))
	assert.Equal(t, "nuit", tr.Period(gametime.Night))
	assert.Equal(t, "Jour : 2", tr.Msg(config.TKeyStatusDay, map[string]any{"Day": 2}))
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr, err := NewTranslator("en")
	require.NoError(t, err)
	assert.Equal(t, "no_such_key", tr.Msg("no_such_key", nil))
}

// TestTranslator_DrivesClock checks the translator plugs into the clock as its narrator.
func TestTranslator_DrivesClock(t *testing.T) {
	tr, err := NewTranslator("fr")
	require.NoError(t, err)

	c := gametime.NewClockWithNarrator(10, tr)

	res := c.Wait(0)
	assert.False(t, res.Success)
	assert.True(t, strings.HasPrefix(res.Message, "Impossible d'attendre"))

	res = c.WaitUntil(25)
	assert.Contains(t, res.Message, "Heure cible invalide")

	res = c.Wait(16)
	assert.Contains(t, res.Message, "Jour 2")
}
