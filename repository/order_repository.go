package repository

import (
	"context"
	"fmt"

	"github.com/Fromshel/ontaste-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository defines data access for the orders collection.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.Order, error)
}

// MongoOrderRepository implements OrderRepository over MongoDB.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create inserts the document as-is and returns the store-generated ID.
func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

// FindByUserEmail returns the user's orders, most recent first.
func (r *MongoOrderRepository) FindByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userEmail": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
