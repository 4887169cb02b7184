package food

import (
	"context"
	"errors"

	"Restaurant-Management-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	FoodRepository interface {
		Insert(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error)
		FindAll(ctx context.Context) ([]entities.Food, error)
		FindTopSelling(ctx context.Context, limit int64) ([]entities.Food, error)
		FindByName(ctx context.Context, name string) ([]entities.Food, error)
		FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error)
		FindByOwner(ctx context.Context, email string) ([]entities.Food, error)
		UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*mongo.UpdateResult, error)
		ApplyPurchase(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error)
	}

	foodRepository struct {
		coll *mongo.Collection
	}
)

func NewFoodRepository(db *mongo.Database) FoodRepository {
	return &foodRepository{coll: db.Collection("foods")}
}

// nameFilter matches foodName by case-insensitive substring.
func nameFilter(name string) bson.M {
	return bson.M{"foodName": primitive.Regex{Pattern: name, Options: "i"}}
}

func topSellingOptions(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "totalPurchase", Value: -1}}).
		SetLimit(limit)
}

// purchaseUpdate is the single-document compound mutation applied when a
// food item is purchased.
func purchaseUpdate() bson.M {
	return bson.M{"$inc": bson.M{"totalPurchase": 1, "quantity": -1}}
}

func (r *foodRepository) Insert(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, food)
}

func (r *foodRepository) FindAll(ctx context.Context) ([]entities.Food, error) {
	return r.find(ctx, bson.M{})
}

func (r *foodRepository) FindTopSelling(ctx context.Context, limit int64) ([]entities.Food, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, topSellingOptions(limit))
	if err != nil {
		return nil, err
	}
	return decodeFoods(ctx, cursor)
}

func (r *foodRepository) FindByName(ctx context.Context, name string) ([]entities.Food, error) {
	return r.find(ctx, nameFilter(name))
}

func (r *foodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error) {
	var food entities.Food
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindByOwner(ctx context.Context, email string) ([]entities.Food, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *foodRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*mongo.UpdateResult, error) {
	return r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
}

func (r *foodRepository) ApplyPurchase(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return r.coll.UpdateByID(ctx, id, purchaseUpdate())
}

func (r *foodRepository) find(ctx context.Context, filter bson.M) ([]entities.Food, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeFoods(ctx, cursor)
}

func decodeFoods(ctx context.Context, cursor *mongo.Cursor) ([]entities.Food, error) {
	foods := []entities.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}
