package handler

import (
	"context"
	"net/http"
	"time"

	"clinic-records/internal/infrastructure/cache"
	"clinic-records/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db         *gorm.DB
	tokenStore cache.TokenStore
	log        *logrus.Logger
}

func NewHealthHandler(db *gorm.DB, tokenStore cache.TokenStore, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:         db,
		tokenStore: tokenStore,
		log:        log,
	}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Check pings the database and the token store
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Status: "ok", Database: "ok", Cache: "ok"}

	if err := h.pingDB(ctx); err != nil {
		h.log.Warnf("Health check database ping failed: %+v", err)
		status.Status, status.Database = "degraded", "unavailable"
	}
	if err := h.tokenStore.Ping(ctx); err != nil {
		h.log.Warnf("Health check cache ping failed: %+v", err)
		status.Status, status.Cache = "degraded", "unavailable"
	}

	if status.Status != "ok" {
		response.JSON(w, http.StatusServiceUnavailable, response.Response{
			Success: false,
			Error:   "Service unavailable",
			Data:    status,
		})
		return
	}
	response.Success(w, http.StatusOK, "Service healthy", status)
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
