package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/couchcryptid/launch-score-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

const (
	routeWeather  = "weather"
	routeScore    = "launch_score"
	routeSchedule = "launch_schedule"
	routeSites    = "sites"

	codeInternal = "INTERNAL_ERROR"
)

// errorBody is the payload for every failed API request. Failures are still
// answered with 200 OK.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the Rocket Launch Scheduling Application API!"))
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	report, err := s.api.Weather(r.Context(), location, useSample(r))
	if err != nil {
		s.writeError(w, routeWeather, location, err)
		return
	}
	s.writeResult(w, routeWeather, report)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	result, err := s.api.Score(r.Context(), location, useSample(r))
	if err != nil {
		s.writeError(w, routeScore, location, err)
		return
	}
	s.writeResult(w, routeScore, result)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.LaunchFilter{
		Site:      q.Get("site"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Status:    q.Get("status"),
	}
	s.writeResult(w, routeSchedule, s.api.Schedule(filter))
}

func (s *Server) handleSites(w http.ResponseWriter, _ *http.Request) {
	s.writeResult(w, routeSites, s.api.Sites())
}

// useSample reads the use_sample flag. Anything strconv.ParseBool rejects is false.
func useSample(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("use_sample"))
	return err == nil && v
}

func (s *Server) writeResult(w http.ResponseWriter, route string, v any) {
	s.metrics.HTTPRequests.WithLabelValues(route, "ok").Inc()
	sharedobs.WriteJSON(w, http.StatusOK, v)
}

func (s *Server) writeError(w http.ResponseWriter, route, location string, err error) {
	s.metrics.HTTPRequests.WithLabelValues(route, "error").Inc()

	var se *domain.SourceError
	if !errors.As(err, &se) {
		s.logger.Error("request failed", "route", route, "location", location, "error", err)
		sharedobs.WriteJSON(w, http.StatusOK, errorBody{Error: codeInternal, Message: "internal error"})
		return
	}

	if se.Code != domain.CodeUnknownLocation {
		s.logger.Warn("weather lookup failed",
			"route", route,
			"location", location,
			"code", se.Code,
			"status", se.Status,
			"error", err,
		)
	}
	sharedobs.WriteJSON(w, http.StatusOK, errorBody{Error: string(se.Code), Message: se.Message})
}
