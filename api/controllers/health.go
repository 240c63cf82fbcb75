package controllers

import (
	"net/http"

	"github.com/veltrade/order-records-backend/api/responses"
	"github.com/veltrade/order-records-backend/pkg/config"
	"github.com/veltrade/order-records-backend/pkg/db"
	pkgerrors "github.com/veltrade/order-records-backend/pkg/errors"
	"github.com/veltrade/order-records-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "database not wired"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "database unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
