package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRestaurantRepository struct {
	collection *mongo.Collection
}

func NewMongoRestaurantRepository(collection *mongo.Collection) RestaurantRepository {
	return &mongoRestaurantRepository{
		collection: collection,
	}
}

func (r *mongoRestaurantRepository) GetByID(ctx context.Context, id int64) (domain.Restaurant, bool, error) {
	var restaurant domain.Restaurant

	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Restaurant{}, false, nil
		}
		return domain.Restaurant{}, false, fmt.Errorf("erro ao buscar restaurante no MongoDB: %w", err)
	}

	return restaurant, true, nil
}

func (r *mongoRestaurantRepository) All(ctx context.Context) ([]domain.Restaurant, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	return r.find(ctx, bson.M{}, findOptions)
}

func (r *mongoRestaurantRepository) List(ctx context.Context, q domain.RestaurantQuery) (*domain.RestaurantPage, error) {
	filter := restaurantFilterDocument(q)

	findOptions := options.Find().
		SetSort(restaurantSortDocument(q)).
		SetSkip(int64(q.Offset())).
		SetLimit(int64(q.Limit))

	restaurants, err := r.find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar restaurantes no MongoDB: %w", err)
	}

	return &domain.RestaurantPage{
		Restaurants: restaurants,
		Total:       total,
		Page:        q.Page,
		Limit:       q.Limit,
	}, nil
}

func (r *mongoRestaurantRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.Restaurant, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar restaurantes no MongoDB: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0)
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, fmt.Errorf("erro ao decodificar restaurantes do MongoDB: %w", err)
	}

	return restaurants, nil
}

func restaurantFilterDocument(q domain.RestaurantQuery) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		filter["name"] = containsRegex(q.Search)
	}

	if q.Location != "" {
		filter["location"] = containsRegex(q.Location)
	}

	if q.Cuisine != "" {
		filter["cuisine"] = containsRegex(q.Cuisine)
	}

	return filter
}

func restaurantSortDocument(q domain.RestaurantQuery) bson.D {
	field := q.SortBy
	if _, ok := restaurantSortColumns[field]; !ok {
		field = domain.RestaurantSortName
	}

	direction := 1
	if q.SortDesc {
		direction = -1
	}

	sort := bson.D{{Key: field, Value: direction}}
	if field != domain.RestaurantSortID {
		sort = append(sort, bson.E{Key: "id", Value: 1})
	}

	return sort
}

func containsRegex(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}
