package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// orderDocument é o formato gravado na coleção orders (order_amount é um Number)
type orderDocument struct {
	ID           int64     `bson:"id"`
	RestaurantID int64     `bson:"restaurant_id"`
	OrderAmount  float64   `bson:"order_amount"`
	OrderTime    time.Time `bson:"order_time"`
}

func (d orderDocument) toDomain() domain.Order {
	return domain.Order{
		ID:           d.ID,
		RestaurantID: d.RestaurantID,
		Amount:       decimal.NewFromFloat(d.OrderAmount),
		Time:         d.OrderTime.UTC(),
	}
}

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) OrderRepository {
	return &mongoOrderRepository{
		collection: collection,
	}
}

func (r *mongoOrderRepository) Fetch(ctx context.Context, restaurantID *int64) ([]domain.Order, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "order_time", Value: 1},
		{Key: "id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, orderFilterDocument(restaurantID), findOptions)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos no MongoDB: %w", err)
	}

	var documents []orderDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("erro ao decodificar pedidos do MongoDB: %w", err)
	}

	orders := make([]domain.Order, 0, len(documents))
	for _, document := range documents {
		orders = append(orders, document.toDomain())
	}

	return orders, nil
}

func orderFilterDocument(restaurantID *int64) bson.M {
	filter := bson.M{}
	if restaurantID != nil {
		filter["restaurant_id"] = *restaurantID
	}
	return filter
}
