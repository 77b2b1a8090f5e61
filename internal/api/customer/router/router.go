// Package router đăng ký các route của domain customer, bao gồm cả các
// route đơn hàng phía khách (create-order, orders, order/:id).
//
// Thứ tự đăng ký quan trọng với Fiber: các route công khai (signup, login)
// phải nằm TRƯỚC group.Use(auth) để không bị middleware chặn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "food_commerce/internal/api/customer/handler"
	"food_commerce/internal/api/middleware"
	orderhdl "food_commerce/internal/api/order/handler"
)

// Register đăng ký các route customer lên v1.
func Register(v1 fiber.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("create customer handler: %w", err)
	}
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	customer := v1.Group("/customer")

	// Route công khai
	customer.Post("/signup", customerHandler.HandleSignup)
	customer.Post("/login", customerHandler.HandleLogin)

	// Từ đây trở xuống yêu cầu token customer
	customer.Use(middleware.AuthMiddleware(middleware.RoleCustomer))

	customer.Patch("/verify", customerHandler.HandleVerify)
	customer.Get("/otp", customerHandler.HandleRequestOtp)
	customer.Get("/profile", customerHandler.HandleGetProfile)
	customer.Patch("/profile", customerHandler.HandleEditProfile)

	customer.Post("/cart", customerHandler.HandleAddToCart)
	customer.Get("/cart", customerHandler.HandleGetCart)
	customer.Delete("/cart", customerHandler.HandleClearCart)

	customer.Post("/create-order", orderHandler.HandleCreateOrder)
	customer.Get("/orders", orderHandler.HandleGetOrders)
	customer.Get("/order/:id", orderHandler.HandleGetOrderById)
	return nil
}
