package handler

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

func init() {
	// Valores monetários saem como números JSON, ex: "revenue": 35.5
	decimal.MarshalJSONWithoutQuotes = true
}

type validationDetails struct {
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// writeServiceError converte o erro do caso de uso em resposta HTTP.
// Erros de validação viram 400; os demais são falhas da fonte de dados.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var validationErr *filtering.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, validationErr.Code, validationErr.Err.Error(), validationDetails{
			Field:  validationErr.Field,
			Reason: validationErr.Details,
		})
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, nil)
}
