// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

// OrderRepository fornece o conjunto completo de pedidos candidatos, ordenados por
// (order_time, id). A filtragem fina é feita em memória pelas agregações.
type OrderRepository interface {
	Fetch(ctx context.Context, restaurantID *int64) ([]domain.Order, error)
}

type orderRepository struct {
	conn postgres.Queryer
}

func NewOrderRepository(conn postgres.Queryer) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) Fetch(ctx context.Context, restaurantID *int64) ([]domain.Order, error) {
	sqlQuery, args, err := buildFetchOrdersQuery(restaurantID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order

		err := rows.Scan(
			&order.ID,
			&order.RestaurantID,
			&order.Amount,
			&order.Time,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		order.Time = order.Time.UTC()
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func buildFetchOrdersQuery(restaurantID *int64) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(
			"o.id",
			"o.restaurant_id",
			"o.order_amount",
			"o.order_time",
		).
		From(ordersTable).
		OrderBy("o.order_time ASC", "o.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if restaurantID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"o.restaurant_id": *restaurantID})
	}

	return queryBuilder
}
