package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

// HealthChecker verifica uma dependência externa, ex: a conexão com o banco
type HealthChecker func(ctx context.Context) error

type healthResponse struct {
	Status       string            `json:"status"`
	Time         time.Time         `json:"time"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

func HealthcheckHandler(checkers map[string]HealthChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		response := healthResponse{
			Status:       "ok",
			Time:         time.Now().UTC(),
			Dependencies: make(map[string]string, len(checkers)),
		}
		status := http.StatusOK

		for name, check := range checkers {
			if err := check(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("Healthcheck falhou")
				response.Dependencies[name] = "down"
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Dependencies[name] = "up"
		}

		apiErrors.WriteJSON(w, status, response)
	})
}
