package repository

//go:generate mockgen -source=restaurant.go -destination=mocks/restaurant.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	restaurantsTable = "restaurants r"
)

var restaurantColumns = []string{"r.id", "r.name", "r.location", "r.cuisine"}

// Colunas permitidas na ordenação, indexadas pelo campo público
var restaurantSortColumns = map[string]string{
	domain.RestaurantSortID:       "r.id",
	domain.RestaurantSortName:     "r.name",
	domain.RestaurantSortLocation: "r.location",
	domain.RestaurantSortCuisine:  "r.cuisine",
}

type RestaurantRepository interface {
	// GetByID retorna found=false quando o restaurante não existe
	GetByID(ctx context.Context, id int64) (domain.Restaurant, bool, error)
	All(ctx context.Context) ([]domain.Restaurant, error)
	List(ctx context.Context, query domain.RestaurantQuery) (*domain.RestaurantPage, error)
}

type restaurantRepository struct {
	conn postgres.Queryer
}

func NewRestaurantRepository(conn postgres.Queryer) RestaurantRepository {
	return &restaurantRepository{
		conn: conn,
	}
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (domain.Restaurant, bool, error) {
	query, args, err := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.Restaurant{}, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var restaurant domain.Restaurant
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Location,
		&restaurant.Cuisine,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Restaurant{}, false, nil
		}
		return domain.Restaurant{}, false, fmt.Errorf("erro ao escanear restaurante: %w", err)
	}

	return restaurant, true, nil
}

func (r *restaurantRepository) All(ctx context.Context) ([]domain.Restaurant, error) {
	query, args, err := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRestaurants(ctx, query, args)
}

func (r *restaurantRepository) List(ctx context.Context, q domain.RestaurantQuery) (*domain.RestaurantPage, error) {
	listQuery, listArgs, err := buildListRestaurantsQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	countQuery, countArgs, err := buildCountRestaurantsQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	restaurants, err := r.queryRestaurants(ctx, listQuery, listArgs)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erro ao contar restaurantes: %w", err)
	}

	return &domain.RestaurantPage{
		Restaurants: restaurants,
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
	}, nil
}

func (r *restaurantRepository) queryRestaurants(ctx context.Context, query string, args []any) ([]domain.Restaurant, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var restaurant domain.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Location,
			&restaurant.Cuisine,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear restaurante: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return restaurants, nil
}

func restaurantConditions(q domain.RestaurantQuery) squirrel.And {
	conditions := squirrel.And{}

	if q.Search != "" {
		conditions = append(conditions, squirrel.ILike{"r.name": containsPattern(q.Search)})
	}

	if q.Location != "" {
		conditions = append(conditions, squirrel.ILike{"r.location": containsPattern(q.Location)})
	}

	if q.Cuisine != "" {
		conditions = append(conditions, squirrel.ILike{"r.cuisine": containsPattern(q.Cuisine)})
	}

	return conditions
}

func buildListRestaurantsQuery(q domain.RestaurantQuery) squirrel.SelectBuilder {
	sortColumn, ok := restaurantSortColumns[q.SortBy]
	if !ok {
		sortColumn = restaurantSortColumns[domain.RestaurantSortName]
	}

	direction := "ASC"
	if q.SortDesc {
		direction = "DESC"
	}

	queryBuilder := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction), "r.id ASC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		PlaceholderFormat(squirrel.Dollar)

	if conditions := restaurantConditions(q); len(conditions) > 0 {
		queryBuilder = queryBuilder.Where(conditions)
	}

	return queryBuilder
}

func buildCountRestaurantsQuery(q domain.RestaurantQuery) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(restaurantsTable).
		PlaceholderFormat(squirrel.Dollar)

	if conditions := restaurantConditions(q); len(conditions) > 0 {
		queryBuilder = queryBuilder.Where(conditions)
	}

	return queryBuilder
}

// containsPattern monta o padrão ILIKE escapando os curingas digitados pelo usuário
func containsPattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}
