package domain

var (
	MessageFailedAddFood    = "failed to add food item"
	MessageFailedGetFoods   = "failed to retrieve food items"
	MessageFailedUpdateFood = "failed to update food item"
)

// TopSellingLimit caps the top-selling listing.
const TopSellingLimit = 6
