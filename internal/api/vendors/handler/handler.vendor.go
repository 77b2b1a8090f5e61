// Package vendorhdl chứa HTTP handler cho domain vendor: đăng nhập,
// hồ sơ, quản lý menu. Onboarding (admin) ở handler.admin.go.
// File: handler.vendor.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package vendorhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "food_commerce/internal/api/base/handler"
	catalogdto "food_commerce/internal/api/catalog/dto"
	catalogmodels "food_commerce/internal/api/catalog/models"
	catalogsvc "food_commerce/internal/api/catalog/service"
	vendordto "food_commerce/internal/api/vendors/dto"
	vendormodels "food_commerce/internal/api/vendors/models"
	vendorsvc "food_commerce/internal/api/vendors/service"
	"food_commerce/internal/common"
	"food_commerce/internal/logger"
)

// VendorHandler xử lý các request của nhà hàng đã đăng nhập.
type VendorHandler struct {
	basehdl.BaseHandler[vendormodels.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput]
	vendorService *vendorsvc.VendorService
	foodService   *catalogsvc.FoodService
}

// NewVendorHandler tạo mới VendorHandler
func NewVendorHandler() (*VendorHandler, error) {
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %v", err)
	}
	foodService, err := catalogsvc.NewFoodService()
	if err != nil {
		return nil, fmt.Errorf("failed to create food service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[vendormodels.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput](vendorService)
	return &VendorHandler{
		BaseHandler:   *baseHandler,
		vendorService: vendorService,
		foodService:   foodService,
	}, nil
}

// actorID đọc id nhà hàng từ locals do middleware auth gắn.
func actorID(c fiber.Ctx) (primitive.ObjectID, error) {
	raw := c.Locals("actor_id")
	if raw == nil {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	id, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// HandleLogin đăng nhập nhà hàng.
func (h *VendorHandler) HandleLogin(c fiber.Ctx) error {
	var input vendordto.VendorLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	resp, err := h.vendorService.Login(c.Context(), &input)
	h.HandleResponse(c, resp, err)
	return nil
}

// HandleGetProfile trả về hồ sơ nhà hàng đang đăng nhập.
func (h *VendorHandler) HandleGetProfile(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	vendor, err := h.vendorService.FindOneById(c.Context(), vendorID)
	h.HandleResponse(c, vendor, err)
	return nil
}

// HandleEditProfile cập nhật hồ sơ nhà hàng.
func (h *VendorHandler) HandleEditProfile(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input vendordto.VendorUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	vendor, err := h.vendorService.EditProfile(c.Context(), vendorID, &input)
	h.HandleResponse(c, vendor, err)
	return nil
}

// HandleToggleService bật / tắt trạng thái nhận đơn.
func (h *VendorHandler) HandleToggleService(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	vendor, err := h.vendorService.ToggleService(c.Context(), vendorID)
	if err == nil {
		logger.LogAction("toggle-service", "vendor", vendor.ID.Hex(), c, map[string]interface{}{
			"serviceAvailable": vendor.ServiceAvailable,
		})
	}
	h.HandleResponse(c, vendor, err)
	return nil
}

// HandleAddFood thêm một món vào menu của nhà hàng đang đăng nhập.
func (h *VendorHandler) HandleAddFood(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input catalogdto.FoodCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	food := catalogmodels.Food{
		VendorID:    vendorID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		FoodType:    input.FoodType,
		ReadyTime:   input.ReadyTime,
		Price:       input.Price,
		Images:      input.Images,
	}
	created, err := h.foodService.InsertOne(c.Context(), food)
	if err == nil {
		logger.LogAction("add-food", "food", created.ID.Hex(), c, map[string]interface{}{
			"name":  created.Name,
			"price": created.Price,
		})
	}
	h.HandleResponse(c, created, err)
	return nil
}

// HandleGetFoods trả về menu của nhà hàng đang đăng nhập.
func (h *VendorHandler) HandleGetFoods(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	foods, err := h.foodService.FindByVendor(c.Context(), vendorID)
	if err == nil && foods == nil {
		foods = []catalogmodels.Food{}
	}
	h.HandleResponse(c, foods, err)
	return nil
}
