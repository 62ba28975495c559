// HTTP route for the daily aggregate.
//   - GET /stats              → today's summary
//   - GET /stats?date=YYYYMMDD → that day's summary
//
// Reading a day never counts as playing it.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/dailywordle/internal/apperr"
	"github.com/robalobadob/dailywordle/internal/daily"
)

func (s *Server) mountStats(r chi.Router) {
	r.Get("/stats", s.handleStats)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	key := r.URL.Query().Get("date")
	if key == "" {
		key = daily.DateKey(today)
	} else if _, err := daily.ParseDateKey(key, today.Location()); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}

	d, err := s.stats.Read(r.Context(), key)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("date", key).Msg("read stats")
		if errors.Is(err, apperr.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "word_source_unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(d.Summary())
}
