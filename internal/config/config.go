package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Game Clock"
	AppID       = "com.github.tartampluch.go-gameclock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagLang         = "lang"
	FlagServe        = "serve"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr and the log file"
	FlagDescConfig   = "Path to a TOML settings file"
	FlagDescLang     = "Language for player messages (overrides settings)"
	FlagDescServe    = "Serve the clock over HTTP instead of running the demo"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Game Rules
// -----------------------------------------------------------------------------

const (
	DefaultMaxActionPoints = 10
	StartDay               = 1
	StartHour              = 8
	HoursPerDay            = 24
	MinHour                = 0
	MaxHour                = HoursPerDay - 1
	MinWaitHours           = 1

	// Time-of-day boundaries. Each period starts at its hour (inclusive) and
	// runs until the next one starts.
	MorningStartHour   = 6
	AfternoonStartHour = 12
	EveningStartHour   = 17
	NightStartHour     = 21
)

// -----------------------------------------------------------------------------
// Settings Defaults & Limits
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	DefaultPort     = "18080"
	MinPort         = 1
	MaxPort         = 65535
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWaitSameDay   = "wait_same_day"     // Requires Count, Hour
	TKeyWaitNewDay    = "wait_new_day"      // Requires Count, Day
	TKeyErrDuration   = "err_wait_duration" // Requires Min
	TKeyErrTarget     = "err_wait_target"   // Requires Min, Max
	TKeyErrAlreadyAt  = "err_already_at"    // Requires Hour
	TKeyTimeMorning   = "time_morning"
	TKeyTimeAfternoon = "time_afternoon"
	TKeyTimeEvening   = "time_evening"
	TKeyTimeNight     = "time_night"
	TKeyStatusHeader  = "status_header"
	TKeyStatusFooter  = "status_footer"
	TKeyStatusDay     = "status_day"  // Requires Day
	TKeyStatusTime    = "status_time" // Requires Hour, Period
	TKeyStatusAP      = "status_ap"   // Requires Current, Max
	TKeyDemoTitle     = "demo_title"
	TKeyDemoStart     = "demo_start"    // Requires Day, Hour
	TKeyDemoStep      = "demo_step"     // Requires Step, Title
	TKeyDemoResult    = "demo_result"   // Requires Message
	TKeyDemoSuccess   = "demo_success"  // Requires Success
	TKeyDemoSpending  = "demo_spending" // Requires Count
	TKeyDemoRestored  = "demo_restored"
	TKeyDemoComplete  = "demo_complete"
	TKeyStepWaitOne   = "step_wait_one"
	TKeyStepWaitMany  = "step_wait_many"  // Requires Count
	TKeyStepWaitUntil = "step_wait_until" // Requires Hour
	TKeyStepMidnight  = "step_midnight"   // Requires Count
	TKeyStepSpend     = "step_spend"
	TKeyStepReset     = "step_reset" // Requires Count
	TKeyStepInvalid   = "step_invalid"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	LocalhostBindAddr  = "127.0.0.1"
	AddrSeparator      = ":"

	RouteStatus    = "/status"
	RouteWait      = "/wait"
	RouteWaitUntil = "/wait-until"
	RouteAction    = "/action"

	QueryHours = "hours"
	QueryHour  = "hour"

	AllowedMethodsRead  = "GET, HEAD"
	AllowedMethodsWrite = "POST"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderIfNoneMatch  = "If-None-Match"

	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrMaxAPNegative    = "max_action_points must not be negative"
	ErrLangUnsupported  = "unsupported language"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsDecode   = "failed to decode settings file"
	ErrSettingsUnknown  = "unknown settings keys"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrEncodeStatus     = "failed to encode status"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrBadQueryInteger  = "query parameter must be an integer"
	ErrMissingQueryParm = "missing query parameter"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
)

// -----------------------------------------------------------------------------
// Fallbacks (English player messages)
// -----------------------------------------------------------------------------

const (
	FallbackWaitSameDay  = "You waited %d hour(s). Time is now %d:00."
	FallbackWaitNewDay   = "You waited %d hour(s). A new day has begun (Day %d)."
	FallbackErrDuration  = "Cannot wait for less than %d hour"
	FallbackErrTarget    = "Invalid target hour. Must be between %d and %d."
	FallbackErrAlreadyAt = "Already at %d:00"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Status cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgSettingsNone  = "Settings file not found, using defaults"
	MsgSettingsLoad  = "Settings loaded"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgDayRollover   = "New day begun"
	MsgSessionChange = "Session state changed"
	MsgWaitRejected  = "Wait rejected"
	MsgAPDepleted    = "No action points left"
	MsgDemoFinished  = "Demo finished"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDay       = "day"
	LogKeyHour      = "hour"
	LogKeyHours     = "hours"
	LogKeyTarget    = "target_hour"
	LogKeyDays      = "days_crossed"
	LogKeyAP        = "action_points"
	LogKeyReason    = "reason"
	LogKeyPath      = "path"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompClock    = "clock"
	CompSession  = "session"
	CompServer   = "server"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompSettings = "settings"
	CompDemo     = "demo"
)
