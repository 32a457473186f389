package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/guildbot/pkg/domain"
)

var errUnknownGuild = errors.New("unknown guild")

type countView struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type settingsView struct {
	GuildID   string          `json:"guild_id"`
	Features  map[string]bool `json:"features"`
	Config    map[string]any  `json:"config"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type linksView struct {
	Total    int         `json:"total"`
	TopUsers []countView `json:"top_users"`
	TopHosts []countView `json:"top_hosts"`
}

type slapsView struct {
	Total       int         `json:"total"`
	MostSlapped []countView `json:"most_slapped"`
}

// statusHandler returns server status with the bot's guild count and scheduler state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.cfg.Version,
		"time":    time.Now().UTC(),
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	}
	if guilds, err := s.guilds.Guilds(r.Context()); err == nil {
		status["guilds"] = len(guilds)
	}
	if s.scheduler != nil {
		status["qotd"] = s.scheduler.Status()
	}
	renderJSON(w, r, http.StatusOK, status)
}

func (s *Server) guildsHandler(w http.ResponseWriter, r *http.Request) {
	guilds, err := s.guilds.Guilds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list guilds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"guilds": guilds})
}

func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	guildID, ok := s.knownGuild(w, r)
	if !ok {
		return
	}
	gs, err := s.settings.Settings(r.Context(), guildID)
	if err != nil {
		lgr.Printf("[ERROR] failed to get settings for %s: %v", guildID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	cfg, err := s.settings.Config(r.Context(), guildID)
	if err != nil {
		lgr.Printf("[ERROR] failed to get config for %s: %v", guildID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	view := settingsView{GuildID: gs.GuildID, Features: map[string]bool{}, Config: cfg,
		Version: gs.Version, UpdatedAt: gs.UpdatedAt}
	for _, f := range domain.AllFeatures() {
		view.Features[string(f)] = gs.Enabled(f)
	}
	renderJSON(w, r, http.StatusOK, view)
}

func (s *Server) linksHandler(w http.ResponseWriter, r *http.Request) {
	guildID, ok := s.knownGuild(w, r)
	if !ok {
		return
	}
	lb, err := s.boards.Links(r.Context(), guildID)
	if err != nil {
		lgr.Printf("[ERROR] failed to get links for %s: %v", guildID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	view := linksView{TopUsers: []countView{}, TopHosts: []countView{}}
	if lb != nil {
		view = linksView{Total: lb.Total, TopUsers: counts(lb.TopUsers), TopHosts: counts(lb.TopHosts)}
	}
	renderJSON(w, r, http.StatusOK, view)
}

func (s *Server) slapsHandler(w http.ResponseWriter, r *http.Request) {
	guildID, ok := s.knownGuild(w, r)
	if !ok {
		return
	}
	lb, err := s.boards.Slaps(r.Context(), guildID)
	if err != nil {
		lgr.Printf("[ERROR] failed to get slaps for %s: %v", guildID, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	view := slapsView{MostSlapped: []countView{}}
	if lb != nil {
		view = slapsView{Total: lb.Total, MostSlapped: counts(lb.MostSlapped)}
	}
	renderJSON(w, r, http.StatusOK, view)
}

// knownGuild returns the path guild id if the bot is in that guild, otherwise renders 404.
func (s *Server) knownGuild(w http.ResponseWriter, r *http.Request) (string, bool) {
	guildID := r.PathValue("id")
	guilds, err := s.guilds.Guilds(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to list guilds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return "", false
	}
	if !slices.Contains(guilds, guildID) {
		renderError(w, r, errUnknownGuild, http.StatusNotFound)
		return "", false
	}
	return guildID, true
}

func counts(rows []domain.Count) []countView {
	res := make([]countView, 0, len(rows))
	for _, c := range rows {
		res = append(res, countView{Key: c.Key, Count: c.Count})
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
