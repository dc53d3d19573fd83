package filtering

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Usa o nome do parâmetro de consulta nas mensagens de erro
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return v
}

// FilterParams são os parâmetros de consulta ainda não interpretados
type FilterParams struct {
	RestaurantID  string
	RestaurantIDs string // Lista separada por vírgula
	StartDate     string
	EndDate       string
	MinAmount     string
	MaxAmount     string
	MinHour       string
	MaxHour       string
}

type hourBounds struct {
	MinHour *int `json:"min_hour" validate:"omitempty,gte=0,lte=23"`
	MaxHour *int `json:"max_hour" validate:"omitempty,gte=0,lte=23"`
}

// ParseFilterParams converte os parâmetros de consulta em um OrderFilter validado
func ParseFilterParams(params FilterParams) (domain.OrderFilter, error) {
	filter := domain.OrderFilter{}

	if params.RestaurantID != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(params.RestaurantID), 10, 64)
		if err != nil {
			return filter, invalidFormat(ErrInvalidRestaurantID, "restaurant_id", params.RestaurantID)
		}
		filter.RestaurantID = &id
	}

	if params.RestaurantIDs != "" {
		ids, err := parseIDList(params.RestaurantIDs)
		if err != nil {
			return filter, invalidFormat(ErrInvalidRestaurantID, "restaurant_ids", params.RestaurantIDs)
		}
		filter.RestaurantIDs = ids
	}

	startDate, err := utils.ParseDateTime(params.StartDate)
	if err != nil {
		return filter, invalidFormat(ErrInvalidDate, "start_date", params.StartDate)
	}
	filter.StartDate = startDate

	endDate, err := utils.ParseDateTime(params.EndDate)
	if err != nil {
		return filter, invalidFormat(ErrInvalidDate, "end_date", params.EndDate)
	}
	filter.EndDate = endDate

	if filter.MinAmount, err = parseAmount("min_amount", params.MinAmount); err != nil {
		return filter, err
	}

	if filter.MaxAmount, err = parseAmount("max_amount", params.MaxAmount); err != nil {
		return filter, err
	}

	hours := hourBounds{}
	if hours.MinHour, err = parseHour("min_hour", params.MinHour); err != nil {
		return filter, err
	}

	if hours.MaxHour, err = parseHour("max_hour", params.MaxHour); err != nil {
		return filter, err
	}

	if err := ValidateStruct(hours, ErrInvalidHour); err != nil {
		return filter, err
	}
	filter.MinHour = hours.MinHour
	filter.MaxHour = hours.MaxHour

	return filter, nil
}

// ValidateStruct valida a struct com as tags do validator e converte a primeira
// falha em ValidationError
func ValidateStruct(s any, base error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return NewValidationError(
			base,
			apiErrors.ErrInvalidRequest,
			fe.Field(),
			fmt.Sprintf("regra %s=%s violada pelo valor %v", fe.Tag(), fe.Param(), fe.Value()),
		)
	}

	return NewValidationError(base, apiErrors.ErrInvalidRequest, "", err.Error())
}

// ParseInt converte um parâmetro inteiro opcional, retornando o padrão quando vazio
func ParseInt(field, value string, fallback int) (int, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalidFormat(ErrInvalidParameter, field, value)
	}

	return parsed, nil
}

func parseIDList(value string) ([]int64, error) {
	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseAmount(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return nil, invalidFormat(ErrInvalidAmount, field, value)
	}

	if amount.IsNegative() {
		return nil, NewValidationError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, field, "o valor não pode ser negativo")
	}

	return &amount, nil
}

func parseHour(field, value string) (*int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	hour, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, invalidFormat(ErrInvalidHour, field, value)
	}

	return &hour, nil
}
