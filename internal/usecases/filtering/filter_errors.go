package filtering

import (
	"errors"
	"fmt"

	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

// Erros de validação dos parâmetros de consulta
var (
	ErrRestaurantIDRequired = errors.New("restaurant_id is required")
	ErrInvalidRestaurantID  = errors.New("restaurant_id must be numeric")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidHour          = errors.New("hour must be between 0 and 23")
	ErrInvalidParameter     = errors.New("invalid parameter")
)

// ValidationError é um erro de entrada do chamador, nunca deve ser repetido
type ValidationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Parâmetro que falhou
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um novo ValidationError
func NewValidationError(err error, code string, field string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Code:    code,
		Field:   field,
		Details: details,
	}
}

// IsValidation informa se o erro é um erro de entrada
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// AsValidation extrai o ValidationError da cadeia de erros
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

func invalidFormat(err error, field, value string) *ValidationError {
	return NewValidationError(err, apiErrors.ErrInvalidFormat, field, fmt.Sprintf("valor recebido %q", value))
}
