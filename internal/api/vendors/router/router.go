// Package router đăng ký các route của domain vendor và các route quản trị
// (/admin) onboarding nhà hàng. Route đơn hàng phía nhà hàng cũng mount ở đây.
//
// Thứ tự đăng ký quan trọng với Fiber: POST /vendor/login phải nằm TRƯỚC
// group.Use(auth) để không bị middleware chặn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"food_commerce/internal/api/middleware"
	orderhdl "food_commerce/internal/api/order/handler"
	vendorhdl "food_commerce/internal/api/vendors/handler"
)

// Register đăng ký các route vendor và admin lên v1.
func Register(v1 fiber.Router) error {
	vendorHandler, err := vendorhdl.NewVendorHandler()
	if err != nil {
		return fmt.Errorf("create vendor handler: %w", err)
	}
	adminHandler, err := vendorhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("create admin handler: %w", err)
	}
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	vendor := v1.Group("/vendor")

	// Route công khai
	vendor.Post("/login", vendorHandler.HandleLogin)

	// Từ đây trở xuống yêu cầu token vendor
	vendor.Use(middleware.AuthMiddleware(middleware.RoleVendor))

	vendor.Get("/profile", vendorHandler.HandleGetProfile)
	vendor.Patch("/profile", vendorHandler.HandleEditProfile)
	vendor.Patch("/service", vendorHandler.HandleToggleService)

	vendor.Post("/food", vendorHandler.HandleAddFood)
	vendor.Get("/foods", vendorHandler.HandleGetFoods)

	vendor.Get("/orders", orderHandler.HandleGetVendorOrders)
	vendor.Put("/order/:id/process", orderHandler.HandleProcessOrder)

	// Route quản trị: yêu cầu token admin (xem cmd/server về cách phát
	// token admin khi chạy INITMODE)
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(middleware.RoleAdmin))

	admin.Post("/vendor", adminHandler.HandleCreateVendor)
	admin.Get("/vendors", adminHandler.HandleGetVendors)
	admin.Get("/vendor/:id", adminHandler.HandleGetVendorById)

	// Bộ CRUD chung cho tool quản trị. Lưu ý: insert-one đi qua
	// VendorCreateInput nhưng không hash password (bson:"-" loại nó khi
	// ghi), vendor tạo qua đường này không đăng nhập được - dùng
	// POST /admin/vendor cho onboarding thật.
	vendors := admin.Group("/vendors")
	vendors.Post("/insert-one", adminHandler.InsertOne)
	vendors.Get("/find-one", adminHandler.FindOne)
	vendors.Get("/find", adminHandler.Find)
	vendors.Get("/find-by-id/:id", adminHandler.FindOneById)
	vendors.Get("/find-with-pagination", adminHandler.FindWithPagination)
	vendors.Put("/update-by-id/:id", adminHandler.UpdateById)
	vendors.Delete("/delete-by-id/:id", adminHandler.DeleteById)
	vendors.Get("/count", adminHandler.CountDocuments)
	vendors.Get("/exists", adminHandler.DocumentExists)
	return nil
}
