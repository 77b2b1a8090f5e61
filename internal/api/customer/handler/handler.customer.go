// Package customerhdl chứa HTTP handler cho domain customer: tài khoản
// (signup / login / OTP / profile) và giỏ hàng.
// File: handler.customer.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package customerhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "food_commerce/internal/api/base/handler"
	customerdto "food_commerce/internal/api/customer/dto"
	customermodels "food_commerce/internal/api/customer/models"
	customersvc "food_commerce/internal/api/customer/service"
	"food_commerce/internal/common"
	"food_commerce/internal/logger"
)

// CustomerHandler xử lý các request tài khoản và giỏ hàng của khách.
type CustomerHandler struct {
	basehdl.BaseHandler[customermodels.Customer, customerdto.CustomerSignupInput, customerdto.CustomerProfileEditInput]
	customerService *customersvc.CustomerService
	cartService     *customersvc.CartService
}

// NewCustomerHandler tạo mới CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}
	cartService, err := customersvc.NewCartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[customermodels.Customer, customerdto.CustomerSignupInput, customerdto.CustomerProfileEditInput](customerService)
	return &CustomerHandler{
		BaseHandler:     *baseHandler,
		customerService: customerService,
		cartService:     cartService,
	}, nil
}

// actorID đọc id khách từ locals do middleware auth gắn.
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

// HandleSignup đăng ký tài khoản khách hàng mới.
func (h *CustomerHandler) HandleSignup(c fiber.Ctx) error {
	var input customerdto.CustomerSignupInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	resp, err := h.customerService.Signup(c.Context(), &input)
	if err == nil {
		logger.LogAction("signup", "customer", resp.Email, c, nil)
	}
	h.HandleResponse(c, resp, err)
	return nil
}

// HandleLogin đăng nhập bằng email + mật khẩu.
func (h *CustomerHandler) HandleLogin(c fiber.Ctx) error {
	var input customerdto.CustomerLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	resp, err := h.customerService.Login(c.Context(), &input)
	h.HandleResponse(c, resp, err)
	return nil
}

// HandleVerify xác minh OTP của khách đang đăng nhập.
func (h *CustomerHandler) HandleVerify(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input customerdto.CustomerVerifyInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	resp, err := h.customerService.Verify(c.Context(), customerID, input.Otp)
	if err == nil {
		logger.LogAction("verify", "customer", customerID.Hex(), c, nil)
	}
	h.HandleResponse(c, resp, err)
	return nil
}

// HandleRequestOtp sinh và gửi lại OTP mới.
func (h *CustomerHandler) HandleRequestOtp(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.customerService.RequestOtp(c.Context(), customerID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile trả về hồ sơ của khách đang đăng nhập.
func (h *CustomerHandler) HandleGetProfile(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	profile, err := h.customerService.GetProfile(c.Context(), customerID)
	h.HandleResponse(c, profile, err)
	return nil
}

// HandleEditProfile cập nhật hồ sơ của khách đang đăng nhập.
func (h *CustomerHandler) HandleEditProfile(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input customerdto.CustomerProfileEditInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	profile, err := h.customerService.EditProfile(c.Context(), customerID, &input)
	h.HandleResponse(c, profile, err)
	return nil
}

// HandleAddToCart upsert một dòng giỏ hàng (unit <= 0 là xóa món).
func (h *CustomerHandler) HandleAddToCart(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input customerdto.CartItemInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	foodID, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID món ăn không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	cart, err := h.cartService.AddOrUpdateItem(c.Context(), customerID, foodID, input.Unit)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleGetCart trả về giỏ hàng hiện tại.
func (h *CustomerHandler) HandleGetCart(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.GetCart(c.Context(), customerID)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleClearCart làm rỗng giỏ hàng.
func (h *CustomerHandler) HandleClearCart(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	profile, err := h.cartService.ClearCart(c.Context(), customerID)
	h.HandleResponse(c, profile, err)
	return nil
}
