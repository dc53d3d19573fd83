// Package listing lista e consulta os restaurantes cadastrados
package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 7
	MaxLimit     = 100
	DefaultSort  = domain.RestaurantSortName
)

var allowedSorts = map[string]bool{
	domain.RestaurantSortID:       true,
	domain.RestaurantSortName:     true,
	domain.RestaurantSortLocation: true,
	domain.RestaurantSortCuisine:  true,
}

// ListParams são os parâmetros de consulta de GET /v1/restaurants
type ListParams struct {
	Search   string
	Location string
	Cuisine  string
	Sort     string // Campo de ordenação, prefixo "-" para ordem decrescente
	Page     string
	Limit    string
}

type pagination struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

type ListingService interface {
	ListRestaurants(ctx context.Context, params ListParams) (*domain.RestaurantPage, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
}

type Service struct {
	restaurantRepository repository.RestaurantRepository
}

func NewService(restaurantRepository repository.RestaurantRepository) *Service {
	return &Service{
		restaurantRepository: restaurantRepository,
	}
}

func (s *Service) ListRestaurants(ctx context.Context, params ListParams) (*domain.RestaurantPage, error) {
	query, err := ParseListParams(params)
	if err != nil {
		return nil, err
	}

	page, err := s.restaurantRepository.List(ctx, query)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar restaurantes")
		return nil, fmt.Errorf("erro ao listar restaurantes: %w", err)
	}

	if page.Restaurants == nil {
		page.Restaurants = []domain.Restaurant{}
	}

	return page, nil
}

func (s *Service) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurantID, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, filtering.NewValidationError(filtering.ErrInvalidRestaurantID, apiErrors.ErrInvalidFormat, "id", fmt.Sprintf("valor recebido %q", id))
	}

	restaurant, found, err := s.restaurantRepository.GetByID(ctx, restaurantID)
	if err != nil {
		logrus.WithError(err).WithField("restaurant_id", restaurantID).Error("Erro ao buscar restaurante")
		return nil, fmt.Errorf("erro ao buscar restaurante: %w", err)
	}

	if !found {
		return nil, ErrRestaurantNotFound
	}

	return &restaurant, nil
}

// ParseListParams aplica os valores padrão e valida paginação e ordenação
func ParseListParams(params ListParams) (domain.RestaurantQuery, error) {
	query := domain.RestaurantQuery{
		Search:   strings.TrimSpace(params.Search),
		Location: strings.TrimSpace(params.Location),
		Cuisine:  strings.TrimSpace(params.Cuisine),
		SortBy:   DefaultSort,
	}

	if sort := strings.TrimSpace(params.Sort); sort != "" {
		query.SortDesc = strings.HasPrefix(sort, "-")
		query.SortBy = strings.TrimPrefix(sort, "-")
		if !allowedSorts[query.SortBy] {
			return query, filtering.NewValidationError(ErrInvalidSort, apiErrors.ErrInvalidRequest, "sort", fmt.Sprintf("valor recebido %q", params.Sort))
		}
	}

	page, err := filtering.ParseInt("page", params.Page, DefaultPage)
	if err != nil {
		return query, err
	}

	limit, err := filtering.ParseInt("limit", params.Limit, DefaultLimit)
	if err != nil {
		return query, err
	}

	base := ErrInvalidLimit
	if page < 1 {
		base = ErrInvalidPage
	}

	if err := filtering.ValidateStruct(pagination{Page: page, Limit: limit}, base); err != nil {
		return query, err
	}

	query.Page = page
	query.Limit = limit

	return query, nil
}
