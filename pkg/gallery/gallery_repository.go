package gallery

import (
	"context"

	"Restaurant-Management-Backend/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	GalleryRepository interface {
		Insert(ctx context.Context, post *entities.GalleryPost) (*mongo.InsertOneResult, error)
		FindAll(ctx context.Context) ([]entities.GalleryPost, error)
	}

	galleryRepository struct {
		coll *mongo.Collection
	}
)

func NewGalleryRepository(db *mongo.Database) GalleryRepository {
	return &galleryRepository{coll: db.Collection("gallery")}
}

func (r *galleryRepository) Insert(ctx context.Context, post *entities.GalleryPost) (*mongo.InsertOneResult, error) {
	return r.coll.InsertOne(ctx, post)
}

func (r *galleryRepository) FindAll(ctx context.Context) ([]entities.GalleryPost, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	posts := []entities.GalleryPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
