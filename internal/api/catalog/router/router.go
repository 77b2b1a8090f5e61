// Package router đăng ký các route công khai của domain catalog (shopping).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "food_commerce/internal/api/catalog/handler"
)

// Register đăng ký các route tra cứu công khai lên v1.
// Không có middleware xác thực: khách vãng lai cũng tra cứu được.
func Register(v1 fiber.Router) error {
	shoppingHandler, err := cataloghdl.NewShoppingHandler()
	if err != nil {
		return fmt.Errorf("create shopping handler: %w", err)
	}

	shopping := v1.Group("/shopping")
	shopping.Get("/top-restaurants/:pincode", shoppingHandler.HandleGetTopRestaurants)
	shopping.Get("/foods-in-30-min/:pincode", shoppingHandler.HandleGetFoodsIn30Min)
	shopping.Get("/search/:pincode", shoppingHandler.HandleSearchFoods)
	shopping.Get("/restaurant/:id", shoppingHandler.HandleGetRestaurantById)
	shopping.Get("/:pincode", shoppingHandler.HandleGetFoodAvailability)
	return nil
}
