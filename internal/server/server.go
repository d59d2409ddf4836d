package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/tartampluch/go-gameclock/internal/config"
	"github.com/tartampluch/go-gameclock/internal/gametime"
	"github.com/tartampluch/go-gameclock/internal/session"
)

// cacheItem stores the rendered status and its ETag.
type cacheItem struct {
	data []byte
	etag string
}

// actionResponse is the body returned by the action endpoint.
type actionResponse struct {
	Spent  bool            `json:"spent"`
	Status gametime.Status `json:"status"`
}

// StatusServer exposes one game session over HTTP.
type StatusServer struct {
	// cache holds the last rendered status. Status reads vastly outnumber
	// mutations, so reads go through an atomic pointer instead of the session lock.
	cache atomic.Pointer[cacheItem]
	game  *session.Session
	Port  string
}

// NewStatusServer wires the server to game and primes the status cache.
// It takes over game.OnChange to keep the cache current.
func NewStatusServer(port string, game *session.Session) *StatusServer {
	s := &StatusServer{
		game: game,
		Port: port,
	}
	game.OnChange = s.Update
	s.Update(game.Status())
	return s
}

// Handler returns the routing table for the server.
func (s *StatusServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteStatus, s.handleStatus)
	mux.HandleFunc(config.RouteWait, s.handleWait)
	mux.HandleFunc(config.RouteWaitUntil, s.handleWaitUntil)
	mux.HandleFunc(config.RouteAction, s.handleAction)
	return mux
}

// Start runs the HTTP server and blocks until the context is cancelled.
func (s *StatusServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served status.
func (s *StatusServer) Update(st gametime.Status) {
	data, err := json.Marshal(st)
	if err != nil {
		slog.Error(config.ErrEncodeStatus,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		return
	}

	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.cache.Store(&cacheItem{data: data, etag: etag})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleStatus serves the cached status with ETag support.
func (s *StatusServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethodsRead)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodGet {
		if _, err := w.Write(item.data); err != nil {
			logWriteError(err)
		}
	}
}

func (s *StatusServer) handleWait(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	hours, ok := intQuery(w, r, config.QueryHours)
	if !ok {
		return
	}
	writeWaitResult(w, s.game.Wait(hours))
}

func (s *StatusServer) handleWaitUntil(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	hour, ok := intQuery(w, r, config.QueryHour)
	if !ok {
		return
	}
	writeWaitResult(w, s.game.WaitUntil(hour))
}

func (s *StatusServer) handleAction(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	spent, st := s.game.SpendActionPoint()
	writeJSON(w, http.StatusOK, actionResponse{Spent: spent, Status: st})
}

// requirePost rejects anything but POST with 405.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set(config.HeaderAllow, config.AllowedMethodsWrite)
	http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
	return false
}

// intQuery parses an integer query parameter, answering 400 when it is
// missing or malformed.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		http.Error(w, config.ErrMissingQueryParm+": "+name, http.StatusBadRequest)
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, config.ErrBadQueryInteger+": "+name, http.StatusBadRequest)
		return 0, false
	}
	return n, true
}

// writeWaitResult answers 200 for a completed wait and 422 for a rejected one.
// The body is the full result in both cases.
func writeWaitResult(w http.ResponseWriter, res gametime.WaitResult) {
	code := http.StatusOK
	if !res.Success {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, res)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logWriteError(err)
	}
}

func logWriteError(err error) {
	slog.Error(config.ErrWriteResp,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyError, err,
	)
}
