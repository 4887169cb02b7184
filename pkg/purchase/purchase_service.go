package purchase

import (
	"context"
	"fmt"

	"Restaurant-Management-Backend/domain"
	"Restaurant-Management-Backend/entities"
	"Restaurant-Management-Backend/internal/utils/mailing"
	"Restaurant-Management-Backend/pkg/food"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	PurchaseService interface {
		PlaceOrder(ctx context.Context, foodID string, purchase *entities.Purchase) (*domain.PlaceOrderResult, error)
		GetPurchasesByBuyer(ctx context.Context, email string) ([]entities.Purchase, error)
		DeletePurchase(ctx context.Context, id string) (*mongo.DeleteResult, error)
	}

	purchaseService struct {
		purchaseRepository PurchaseRepository
		foodRepository     food.FoodRepository
		mailer             mailing.Mailer
	}
)

func NewPurchaseService(purchaseRepository PurchaseRepository, foodRepository food.FoodRepository, mailer mailing.Mailer) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		foodRepository:     foodRepository,
		mailer:             mailer,
	}
}

// PlaceOrder decrements the food's quantity, increments its totalPurchase
// and records the purchase. The two writes are sequential against separate
// collections and deliberately not transactional: a purchase against an
// unknown food id still records the purchase and reports a zero-match
// food update in the returned acknowledgments.
func (s *purchaseService) PlaceOrder(ctx context.Context, foodID string, purchase *entities.Purchase) (*domain.PlaceOrderResult, error) {
	objectID, err := primitive.ObjectIDFromHex(foodID)
	if err != nil {
		return nil, domain.ErrInvalidObjectID
	}

	updateFoods, err := s.foodRepository.ApplyPurchase(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if updateFoods.MatchedCount == 0 {
		log.Warnf("purchase recorded for food %s which matched no document", foodID)
	}

	result, err := s.purchaseRepository.Insert(ctx, purchase)
	if err != nil {
		return nil, err
	}

	if purchase.BuyerEmail != "" {
		body := fmt.Sprintf("<p>Your order has been placed. Order reference: %v</p>", result.InsertedID)
		if err := s.mailer.Send(purchase.BuyerEmail, "Order confirmation", body); err != nil {
			log.Warnf("failed to send order confirmation to %s: %v", purchase.BuyerEmail, err)
		}
	}

	return &domain.PlaceOrderResult{Result: result, UpdateFoods: updateFoods}, nil
}

func (s *purchaseService) GetPurchasesByBuyer(ctx context.Context, email string) ([]entities.Purchase, error) {
	return s.purchaseRepository.FindByBuyer(ctx, email)
}

// DeletePurchase acknowledges zero deletions for an unknown id without
// treating it as an error.
func (s *purchaseService) DeletePurchase(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidObjectID
	}
	return s.purchaseRepository.DeleteByID(ctx, objectID)
}
