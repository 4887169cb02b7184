package entities

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GalleryPost is a document in the gallery collection. Everything the
// client sends (image reference, caption, author) passes through opaquely.
type GalleryPost struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Extra map[string]any     `bson:",inline"`
}

func (g GalleryPost) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(g.Extra)+1)
	for k, v := range g.Extra {
		doc[k] = v
	}
	if !g.ID.IsZero() {
		doc["_id"] = g.ID.Hex()
	}
	return json.Marshal(doc)
}

func (g *GalleryPost) UnmarshalJSON(data []byte) error {
	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	delete(doc, "_id")
	g.Extra = doc
	return nil
}
