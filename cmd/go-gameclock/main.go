package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/demo"
	"github.com/tartampluch/go-gameclock/internal/gametime"
	"github.com/tartampluch/go-gameclock/internal/i18n"
	"github.com/tartampluch/go-gameclock/internal/server"
	"github.com/tartampluch/go-gameclock/internal/session"
)

// main delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout))
}

// options holds the parsed command line.
type options struct {
	showVersion bool
	debug       bool
	configPath  string
	lang        string
	serve       bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.BoolVar(&opts.showVersion, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&opts.configPath, config.FlagConfig, "", config.FlagDescConfig)
	fs.StringVar(&opts.lang, config.FlagLang, "", config.FlagDescLang)
	fs.BoolVar(&opts.serve, config.FlagServe, false, config.FlagDescServe)
	err := fs.Parse(args)
	return opts, err
}

// runMain manages argument parsing, logging, and exit codes.
func runMain(args []string, out io.Writer) int {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return config.ExitCodeSuccess
	}
	if err != nil {
		return config.ExitCodeError
	}

	if opts.showVersion {
		printVersion(out)
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(opts.debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close()
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, opts, out); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads settings, wires dependencies, and runs either the demo or the server.
func run(ctx context.Context, opts options, out io.Writer) error {
	settings, err := config.LoadSettings(opts.configPath)
	if err != nil {
		return err
	}
	if opts.lang != "" {
		settings.Language = opts.lang
	}

	tr, err := i18n.NewTranslator(settings.Language)
	if err != nil {
		return err
	}

	if !opts.serve {
		runner := &demo.Runner{Out: out, Tr: tr}
		runner.Run(settings.MaxActionPoints)
		return nil
	}

	game := session.New(gametime.NewClockWithNarrator(settings.MaxActionPoints, tr))
	srv := server.NewStatusServer(settings.ServerPort, game)
	return srv.Start(ctx)
}

func printVersion(out io.Writer) {
	_, _ = fmt.Fprintf(out, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyDate, config.Date),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging installs the default logger: colored text on stderr, plus
// JSON lines in the user cache dir when that file can be opened. Stdout is
// left to the demo output.
func setupLogging(debugMode bool) io.Closer {
	var logFile *os.File
	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if logFile == nil {
		slog.SetDefault(slog.New(newLogHandler(os.Stderr, nil, debugMode)))
		return nil
	}
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, logFile, debugMode)))
	return logFile
}

// newLogHandler fans records out to a tint handler on console and, when file
// is non-nil, a JSON handler on file.
func newLogHandler(console, file io.Writer, debugMode bool) slog.Handler {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		tint.NewHandler(console, &tint.Options{
			Level:      level,
			AddSource:  debugMode,
			TimeFormat: time.TimeOnly,
		}),
	}
	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:     level,
			AddSource: debugMode,
		}))
	}
	return slogmulti.Fanout(handlers...)
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
