package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const (
	defaultLogLimit = 200
	maxLogLimit     = 1000
)

// AuditLogs returns the most recent audit entries, newest first.
func AuditLogs(st AuditStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLogLimit
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
			limit = min(v, maxLogLimit)
		}
		logs, err := st.ListAudit(r.Context(), limit)
		if err != nil {
			storeError(w, lg, dbErrorBody, "list audit failed", err)
			return
		}
		respondJSON(w, logs)
	}
}
