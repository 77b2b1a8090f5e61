// Package vendorhdl - handler onboarding nhà hàng, chỉ dành cho admin.
// File: handler.admin.go - giữ tên cấu trúc cũ.
package vendorhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "food_commerce/internal/api/base/handler"
	vendordto "food_commerce/internal/api/vendors/dto"
	vendormodels "food_commerce/internal/api/vendors/models"
	vendorsvc "food_commerce/internal/api/vendors/service"
	"food_commerce/internal/common"
	"food_commerce/internal/logger"
)

// AdminHandler xử lý các request quản trị nhà hàng (onboarding, tra cứu).
type AdminHandler struct {
	basehdl.BaseHandler[vendormodels.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput]
	vendorService *vendorsvc.VendorService
}

// NewAdminHandler tạo mới AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	vendorService, err := vendorsvc.NewVendorService()
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[vendormodels.Vendor, vendordto.VendorCreateInput, vendordto.VendorUpdateInput](vendorService)
	return &AdminHandler{
		BaseHandler:   *baseHandler,
		vendorService: vendorService,
	}, nil
}

// HandleCreateVendor tạo nhà hàng mới (onboarding).
func (h *AdminHandler) HandleCreateVendor(c fiber.Ctx) error {
	var input vendordto.VendorCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	vendor, err := h.vendorService.CreateVendor(c.Context(), &input)
	if err == nil {
		logger.LogAction("create", "vendor", vendor.ID.Hex(), c, map[string]interface{}{
			"name":    vendor.Name,
			"pincode": vendor.Pincode,
		})
	}
	h.HandleResponse(c, vendor, err)
	return nil
}

// HandleGetVendors trả về danh sách toàn bộ nhà hàng.
func (h *AdminHandler) HandleGetVendors(c fiber.Ctx) error {
	vendors, err := h.vendorService.Find(c.Context(), map[string]interface{}{}, nil)
	if err == nil && vendors == nil {
		vendors = []vendormodels.Vendor{}
	}
	h.HandleResponse(c, vendors, err)
	return nil
}

// HandleGetVendorById trả về chi tiết một nhà hàng.
func (h *AdminHandler) HandleGetVendorById(c fiber.Ctx) error {
	vendorID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nhà hàng không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	vendor, err := h.vendorService.FindOneById(c.Context(), vendorID)
	h.HandleResponse(c, vendor, err)
	return nil
}
