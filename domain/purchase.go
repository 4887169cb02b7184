package domain

import "go.mongodb.org/mongo-driver/mongo"

var (
	MessageFailedPlaceOrder     = "failed to place order"
	MessageFailedGetPurchases   = "failed to retrieve purchases"
	MessageFailedDeletePurchase = "failed to delete purchase"
)

// PlaceOrderResult carries both acknowledgments of the compound purchase
// write: the purchase insert and the food quantity/totalPurchase update.
// The two writes are sequential, not transactional, so UpdateFoods may
// report zero matched documents while Result still holds an inserted id.
type PlaceOrderResult struct {
	Result      *mongo.InsertOneResult `json:"result"`
	UpdateFoods *mongo.UpdateResult    `json:"updateFoods"`
}
