package entities

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a document in the foods collection. Beyond the fields the
// handlers touch, documents carry arbitrary descriptive fields (price,
// image, category, origin) which are kept opaque in Extra.
type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"foodName,omitempty"`
	OwnerEmail    string             `bson:"email,omitempty"`
	Quantity      int64              `bson:"quantity"`
	TotalPurchase int64              `bson:"totalPurchase"`
	Extra         map[string]any     `bson:",inline"`
}

func (f Food) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(f.Extra)+5)
	for k, v := range f.Extra {
		doc[k] = v
	}
	if !f.ID.IsZero() {
		doc["_id"] = f.ID.Hex()
	}
	if f.Name != "" {
		doc["foodName"] = f.Name
	}
	if f.OwnerEmail != "" {
		doc["email"] = f.OwnerEmail
	}
	doc["quantity"] = f.Quantity
	doc["totalPurchase"] = f.TotalPurchase
	return json.Marshal(doc)
}

func (f *Food) UnmarshalJSON(data []byte) error {
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if name, ok := doc["foodName"].(string); ok {
		f.Name = name
	}
	if email, ok := doc["email"].(string); ok {
		f.OwnerEmail = email
	}
	if _, ok := doc["quantity"]; ok {
		f.Quantity = asInt64(doc["quantity"])
	}
	if _, ok := doc["totalPurchase"]; ok {
		f.TotalPurchase = asInt64(doc["totalPurchase"])
	}
	delete(doc, "_id")
	delete(doc, "foodName")
	delete(doc, "email")
	delete(doc, "quantity")
	delete(doc, "totalPurchase")
	f.Extra = doc
	return nil
}
