package handlers

import (
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

const dbErrorBody = "Unable to retrieve data from database."

func respondJSON(w http.ResponseWriter, v interface{}) {
	b, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// respondIndentedJSON writes v with four space indentation, which is easier
// to read when the endpoint is opened in a browser.
func respondIndentedJSON(w http.ResponseWriter, v interface{}) {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "    ")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func storeError(w http.ResponseWriter, lg *zap.SugaredLogger, body, msg string, err error) {
	lg.Errorw(msg, "error", err)
	http.Error(w, body, http.StatusInternalServerError)
}

// parseCount reads a row count. Empty means def; values above max are
// clamped; anything that is not a positive integer is rejected.
func parseCount(raw string, def, max int) (int, bool) {
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	if n > max {
		n = max
	}
	return n, true
}
