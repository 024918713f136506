package repository

import (
	"context"

	"github.com/Fromshel/ontaste-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MenuRepository defines data access for the menu_items collection.
type MenuRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	InsertCatalog(ctx context.Context, items []models.MenuItem) error
	EnsureIndexes(ctx context.Context) error
}

// MongoMenuRepository implements MenuRepository over MongoDB.
type MongoMenuRepository struct {
	collection *mongo.Collection
}

func NewMongoMenuRepository(db *mongo.Database) MenuRepository {
	return &MongoMenuRepository{
		collection: db.Collection("menu_items"),
	}
}

func (r *MongoMenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoMenuRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoMenuRepository) InsertCatalog(ctx context.Context, items []models.MenuItem) error {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes builds the unique name index that makes concurrent seeding
// safe: the losing count-then-insert racer gets a duplicate key error
// instead of duplicating the catalog.
func (r *MongoMenuRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
