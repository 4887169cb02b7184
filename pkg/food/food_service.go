package food

import (
	"context"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error)
		GetFoods(ctx context.Context) ([]entities.Food, error)
		GetTopSellingFoods(ctx context.Context) ([]entities.Food, error)
		SearchFoodsByName(ctx context.Context, name string) ([]entities.Food, error)
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodsByOwner(ctx context.Context, email string) ([]entities.Food, error)
		UpdateFood(ctx context.Context, id string, fields map[string]any) (*mongo.UpdateResult, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFood(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error) {
	return s.foodRepository.Insert(ctx, food)
}

func (s *foodService) GetFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foodRepository.FindAll(ctx)
}

func (s *foodService) GetTopSellingFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foodRepository.FindTopSelling(ctx, domain.TopSellingLimit)
}

func (s *foodService) SearchFoodsByName(ctx context.Context, name string) ([]entities.Food, error) {
	return s.foodRepository.FindByName(ctx, name)
}

// GetFoodByID returns nil without error when no document matches, so the
// handler can answer with a null body the way the surface always has.
func (s *foodService) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidObjectID
	}
	return s.foodRepository.FindByID(ctx, objectID)
}

func (s *foodService) GetFoodsByOwner(ctx context.Context, email string) ([]entities.Food, error) {
	return s.foodRepository.FindByOwner(ctx, email)
}

func (s *foodService) UpdateFood(ctx context.Context, id string, fields map[string]any) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidObjectID
	}
	// The merge must never rewrite the store-assigned identifier.
	delete(fields, "_id")
	return s.foodRepository.UpdateFields(ctx, objectID, fields)
}
