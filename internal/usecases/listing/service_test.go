package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/filtering"
	"go.uber.org/mock/gomock"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name     string
		params   ListParams
		expected domain.RestaurantQuery
		err      error
	}{
		{
			name:   "Valores padrão",
			params: ListParams{},
			expected: domain.RestaurantQuery{
				SortBy: domain.RestaurantSortName,
				Page:   1,
				Limit:  7,
			},
		},
		{
			name: "Ordenação decrescente e filtros",
			params: ListParams{
				Search:   " pizza ",
				Location: "Recife",
				Cuisine:  "italiana",
				Sort:     "-location",
				Page:     "3",
				Limit:    "20",
			},
			expected: domain.RestaurantQuery{
				Search:   "pizza",
				Location: "Recife",
				Cuisine:  "italiana",
				SortBy:   domain.RestaurantSortLocation,
				SortDesc: true,
				Page:     3,
				Limit:    20,
			},
		},
		{
			name:   "Campo de ordenação desconhecido",
			params: ListParams{Sort: "revenue"},
			err:    ErrInvalidSort,
		},
		{
			name:   "Página zero",
			params: ListParams{Page: "0"},
			err:    ErrInvalidPage,
		},
		{
			name:   "Limite acima do máximo",
			params: ListParams{Limit: "101"},
			err:    ErrInvalidLimit,
		},
		{
			name:   "Limite não numérico",
			params: ListParams{Limit: "dez"},
			err:    filtering.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := ParseListParams(tt.params)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.True(t, filtering.IsValidation(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

func TestService_ListRestaurants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRestaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	service := NewService(mockRestaurantRepo)

	t.Run("Retorna a página do repositório", func(t *testing.T) {
		expectedQuery := domain.RestaurantQuery{SortBy: domain.RestaurantSortName, Page: 2, Limit: 7}
		mockRestaurantRepo.EXPECT().
			List(gomock.Any(), expectedQuery).
			Return(&domain.RestaurantPage{
				Restaurants: []domain.Restaurant{{ID: 8, Name: "Cantina"}},
				Total:       8,
				Page:        2,
				Limit:       7,
			}, nil)

		page, err := service.ListRestaurants(context.Background(), ListParams{Page: "2"})
		require.NoError(t, err)
		assert.Equal(t, int64(8), page.Total)
		assert.Len(t, page.Restaurants, 1)
	})

	t.Run("Página vazia retorna lista vazia", func(t *testing.T) {
		mockRestaurantRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(&domain.RestaurantPage{Page: 1, Limit: 7}, nil)

		page, err := service.ListRestaurants(context.Background(), ListParams{})
		require.NoError(t, err)
		assert.NotNil(t, page.Restaurants)
		assert.Empty(t, page.Restaurants)
	})

	t.Run("Parâmetro inválido não consulta o repositório", func(t *testing.T) {
		_, err := service.ListRestaurants(context.Background(), ListParams{Sort: "-price"})
		assert.ErrorIs(t, err, ErrInvalidSort)
	})

	t.Run("Erro no repositório", func(t *testing.T) {
		mockRestaurantRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		_, err := service.ListRestaurants(context.Background(), ListParams{})
		require.Error(t, err)
		assert.False(t, filtering.IsValidation(err))
	})
}

func TestService_GetRestaurant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRestaurantRepo := mocks.NewMockRestaurantRepository(ctrl)
	service := NewService(mockRestaurantRepo)

	t.Run("Encontrado", func(t *testing.T) {
		mockRestaurantRepo.EXPECT().
			GetByID(gomock.Any(), int64(3)).
			Return(domain.Restaurant{ID: 3, Name: "Cantina"}, true, nil)

		restaurant, err := service.GetRestaurant(context.Background(), "3")
		require.NoError(t, err)
		assert.Equal(t, "Cantina", restaurant.Name)
	})

	t.Run("Inexistente", func(t *testing.T) {
		mockRestaurantRepo.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(domain.Restaurant{}, false, nil)

		_, err := service.GetRestaurant(context.Background(), "99")
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})

	t.Run("ID inválido", func(t *testing.T) {
		_, err := service.GetRestaurant(context.Background(), "abc")
		assert.ErrorIs(t, err, filtering.ErrInvalidRestaurantID)
	})
}
