package entities

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase is a document in the purchases collection. FoodID references
// a foods document by identifier but is not enforced as a foreign key.
// Order details (quantity ordered, price, date) stay opaque in Extra.
type Purchase struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FoodID     string             `bson:"foodId,omitempty"`
	BuyerEmail string             `bson:"email,omitempty"`
	Extra      map[string]any     `bson:",inline"`
}

func (p Purchase) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(p.Extra)+3)
	for k, v := range p.Extra {
		doc[k] = v
	}
	if !p.ID.IsZero() {
		doc["_id"] = p.ID.Hex()
	}
	if p.FoodID != "" {
		doc["foodId"] = p.FoodID
	}
	if p.BuyerEmail != "" {
		doc["email"] = p.BuyerEmail
	}
	return json.Marshal(doc)
}

func (p *Purchase) UnmarshalJSON(data []byte) error {
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if foodID, ok := doc["foodId"].(string); ok {
		p.FoodID = foodID
	}
	if email, ok := doc["email"].(string); ok {
		p.BuyerEmail = email
	}
	delete(doc, "_id")
	delete(doc, "foodId")
	delete(doc, "email")
	p.Extra = doc
	return nil
}
