package inventory

import (
	"github.com/yinpa-bot/yinpa/internal/catalog"
	"github.com/yinpa-bot/yinpa/internal/entities"
)

// BuyInput defines the request for purchasing an item
type BuyInput struct {
	UserID   int64
	ItemName string
	Count    int
}

// BuyOutput defines the response for a purchase
type BuyOutput struct {
	User *entities.User
	Item catalog.Item
	// Charged is the total passed to the payment authorizer
	Charged int
	// Owned is the count held after the purchase
	Owned int
}

// UseInput defines the request for consuming an item
type UseInput struct {
	UserID int64
	// TargetID is required for target-scoped items; 0 means no target
	TargetID int64
	ItemName string
	Count    int
}

// UseOutput defines the response for consuming an item
type UseOutput struct {
	User *entities.User
	// Target is nil when the item only acted on the user or the user
	// targeted themselves
	Target *entities.User
	Item   catalog.Item
	// Remaining is the count held after consumption
	Remaining int
}
