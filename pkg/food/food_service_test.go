package food

import (
	"context"
	"testing"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockFoodRepository is a mock implementation of FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Insert(ctx context.Context, food *entities.Food) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]entities.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Food), args.Error(1)
}

func (m *MockFoodRepository) FindTopSelling(ctx context.Context, limit int64) ([]entities.Food, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByName(ctx context.Context, name string) ([]entities.Food, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByOwner(ctx context.Context, email string) ([]entities.Food, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Food), args.Error(1)
}

func (m *MockFoodRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockFoodRepository) ApplyPurchase(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func TestGetFoodByIDRejectsMalformedID(t *testing.T) {
	repo := new(MockFoodRepository)
	svc := NewFoodService(repo)

	_, err := svc.GetFoodByID(context.Background(), "not-a-hex-id")

	assert.ErrorIs(t, err, domain.ErrInvalidObjectID)
	repo.AssertNotCalled(t, "FindByID")
}

func TestGetFoodByIDReturnsNilForMissingDocument(t *testing.T) {
	repo := new(MockFoodRepository)
	svc := NewFoodService(repo)

	id := primitive.NewObjectID()
	repo.On("FindByID", mock.Anything, id).Return(nil, nil)

	foodItem, err := svc.GetFoodByID(context.Background(), id.Hex())

	assert.NoError(t, err)
	assert.Nil(t, foodItem)
	repo.AssertExpectations(t)
}

func TestGetTopSellingFoodsUsesFixedLimit(t *testing.T) {
	repo := new(MockFoodRepository)
	svc := NewFoodService(repo)

	repo.On("FindTopSelling", mock.Anything, int64(domain.TopSellingLimit)).
		Return([]entities.Food{}, nil)

	foods, err := svc.GetTopSellingFoods(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, foods)
	repo.AssertExpectations(t)
}

func TestUpdateFoodStripsIdentifierFromMerge(t *testing.T) {
	repo := new(MockFoodRepository)
	svc := NewFoodService(repo)

	id := primitive.NewObjectID()
	repo.On("UpdateFields", mock.Anything, id, map[string]any{"price": 12.5}).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	res, err := svc.UpdateFood(context.Background(), id.Hex(), map[string]any{
		"_id":   "attacker-controlled",
		"price": 12.5,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	repo.AssertExpectations(t)
}

func TestUpdateFoodRejectsMalformedID(t *testing.T) {
	repo := new(MockFoodRepository)
	svc := NewFoodService(repo)

	_, err := svc.UpdateFood(context.Background(), "zzz", map[string]any{"price": 1})

	assert.ErrorIs(t, err, domain.ErrInvalidObjectID)
	repo.AssertNotCalled(t, "UpdateFields")
}
