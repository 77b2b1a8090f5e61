// Package cataloghdl chứa HTTP handler cho domain catalog (tra cứu công khai).
// File: handler.catalog.shopping.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "food_commerce/internal/api/base/handler"
	catalogsvc "food_commerce/internal/api/catalog/service"
	"food_commerce/internal/common"
)

// topRestaurantLimit là số nhà hàng tối đa trả về cho tra cứu top.
const topRestaurantLimit = 10

// ShoppingHandler xử lý các request tra cứu công khai theo pincode.
type ShoppingHandler struct {
	shoppingService *catalogsvc.ShoppingService
}

// NewShoppingHandler tạo mới ShoppingHandler
func NewShoppingHandler() (*ShoppingHandler, error) {
	shoppingService, err := catalogsvc.NewShoppingService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shopping service: %v", err)
	}
	return &ShoppingHandler{
		shoppingService: shoppingService,
	}, nil
}

// requirePincode lấy param pincode, rỗng là lỗi input.
func requirePincode(c fiber.Ctx) (string, error) {
	pincode := c.Params("pincode")
	if pincode == "" {
		return "", common.NewError(common.ErrCodeValidationInput, "Thiếu pincode", common.StatusBadRequest, nil)
	}
	return pincode, nil
}

// HandleGetFoodAvailability trả về các nhà hàng đang phục vụ trong pincode kèm menu.
func (h *ShoppingHandler) HandleGetFoodAvailability(c fiber.Ctx) error {
	pincode, err := requirePincode(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	listings, err := h.shoppingService.GetFoodAvailability(c.Context(), pincode)
	basehdl.WriteResponse(c, listings, err)
	return nil
}

// HandleGetTopRestaurants trả về các nhà hàng rating cao nhất trong pincode.
func (h *ShoppingHandler) HandleGetTopRestaurants(c fiber.Ctx) error {
	pincode, err := requirePincode(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	vendors, err := h.shoppingService.GetTopRestaurants(c.Context(), pincode, topRestaurantLimit)
	basehdl.WriteResponse(c, vendors, err)
	return nil
}

// HandleGetFoodsIn30Min trả về các món chuẩn bị nhanh (<= 30 phút) trong pincode.
func (h *ShoppingHandler) HandleGetFoodsIn30Min(c fiber.Ctx) error {
	pincode, err := requirePincode(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	foods, err := h.shoppingService.GetFoodsIn30Min(c.Context(), pincode)
	basehdl.WriteResponse(c, foods, err)
	return nil
}

// HandleSearchFoods trả về toàn bộ món đang bán trong pincode.
func (h *ShoppingHandler) HandleSearchFoods(c fiber.Ctx) error {
	pincode, err := requirePincode(c)
	if err != nil {
		basehdl.WriteResponse(c, nil, err)
		return nil
	}
	foods, err := h.shoppingService.SearchFoods(c.Context(), pincode)
	basehdl.WriteResponse(c, foods, err)
	return nil
}

// HandleGetRestaurantById trả về một nhà hàng kèm menu.
func (h *ShoppingHandler) HandleGetRestaurantById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nhà hàng không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	listing, err := h.shoppingService.GetRestaurantById(c.Context(), id)
	basehdl.WriteResponse(c, listing, err)
	return nil
}
