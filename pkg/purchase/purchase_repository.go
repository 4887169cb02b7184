package purchase

import (
	"context"

	"Restaurant-Management-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	PurchaseRepository interface {
		Insert(ctx context.Context, purchase *entities.Purchase) (*mongo.InsertOneResult, error)
		FindByBuyer(ctx context.Context, email string) ([]entities.Purchase, error)
		DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	}

	purchaseRepository struct {
		coll *mongo.Collection
	}
)

func NewPurchaseRepository(db *mongo.Database) PurchaseRepository {
	return &purchaseRepository{coll: db.Collection("purchases")}
}

func (r *purchaseRepository) Insert(ctx context.Context, purchase *entities.Purchase) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, purchase)
}

func (r *purchaseRepository) FindByBuyer(ctx context.Context, email string) ([]entities.Purchase, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	purchases := []entities.Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.coll.DeleteOne(ctx, bson.M{"_id": id})
}
