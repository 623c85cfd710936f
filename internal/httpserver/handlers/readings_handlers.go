package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"thermodash/internal/auth"
	"thermodash/internal/models"
	"thermodash/internal/web"
)

const (
	defaultLatestCount = 1
	defaultDataCount   = 10
)

type point struct {
	X time.Time `json:"x"`
	Y float64   `json:"y"`
}

func Latest(st ReadingStore, maxCount int, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, ok := parseCount(chi.URLParam(r, "count"), defaultLatestCount, maxCount)
		if !ok {
			http.Error(w, "Invalid count.", http.StatusBadRequest)
			return
		}
		rows, err := st.LatestReadings(r.Context(), count)
		if err != nil {
			storeError(w, lg, dbErrorBody, "latest readings failed", err)
			return
		}
		respondIndentedJSON(w, rows)
	}
}

func LatestFromEach(st ReadingStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.LatestPerSensor(r.Context())
		if err != nil {
			storeError(w, lg, "Unable to retrieve wanted data from database.", "latest per sensor failed", err)
			return
		}
		respondIndentedJSON(w, rows)
	}
}

// Data returns the user's readings grouped into one series per place.
func Data(st ReadingStore, maxCount int, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, ok := parseCount(chi.URLParam(r, "count"), defaultDataCount, maxCount)
		if !ok {
			http.Error(w, "Invalid count.", http.StatusBadRequest)
			return
		}
		u := auth.UserFromContext(r.Context())
		rows, err := st.ReadingsForUser(r.Context(), count, u.UserID)
		if err != nil {
			storeError(w, lg, dbErrorBody, "readings for user failed", err)
			return
		}
		respondJSON(w, groupByPlace(rows))
	}
}

func groupByPlace(rows []models.Reading) map[string][]point {
	out := make(map[string][]point)
	for _, row := range rows {
		place := row.PlaceLabel()
		out[place] = append(out[place], point{X: row.CaptureTime, Y: row.Temperature})
	}
	return out
}

func Graph(rd *web.Renderer, maxCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, ok := parseCount(r.URL.Query().Get("count"), defaultDataCount, maxCount)
		if !ok {
			count = defaultDataCount
		}
		rd.Render(w, http.StatusOK, web.PageGraph, web.View{User: auth.UserFromContext(r.Context()), Count: count})
	}
}
