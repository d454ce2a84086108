package controllers

import (
	"net/http"

	"github.com/oumar782/Jessback/api/responses"
	"github.com/oumar782/Jessback/pkg/config"
	"github.com/oumar782/Jessback/pkg/db"
	pkgerrors "github.com/oumar782/Jessback/pkg/errors"
	"github.com/oumar782/Jessback/pkg/logger"
	"github.com/oumar782/Jessback/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Jessback-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports whether the API can serve traffic: the database must
// answer, and redis too when one is configured.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Jessback-Env", cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not wired"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}

		checks := map[string]string{"database": "ok"}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
