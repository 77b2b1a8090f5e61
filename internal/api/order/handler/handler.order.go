// Package orderhdl chứa HTTP handler cho domain order. Các route phía khách
// được mount dưới /customer, phía nhà hàng dưới /vendor (xem router của
// từng domain); handler này chỉ tin vào locals do middleware auth gắn.
// File: handler.order.go - giữ tên cấu trúc cũ (handler.<domain>.<entity>.go).
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "food_commerce/internal/api/base/handler"
	orderdto "food_commerce/internal/api/order/dto"
	ordermodels "food_commerce/internal/api/order/models"
	ordersvc "food_commerce/internal/api/order/service"
	"food_commerce/internal/common"
	"food_commerce/internal/logger"
)

// OrderHandler xử lý các request liên quan đến đơn hàng.
type OrderHandler struct {
	basehdl.BaseHandler[ordermodels.Order, orderdto.CreateOrderInput, orderdto.ProcessOrderInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, orderdto.CreateOrderInput, orderdto.ProcessOrderInput](orderService)
	return &OrderHandler{
		BaseHandler:  *baseHandler,
		orderService: orderService,
	}, nil
}

// actorID đọc id của chủ token từ locals do middleware auth gắn.
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

// HandleCreateOrder tạo đơn hàng cho khách đang đăng nhập.
func (h *OrderHandler) HandleCreateOrder(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input orderdto.CreateOrderInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	lines := make([]ordersvc.OrderLine, 0, len(input.Items))
	for _, item := range input.Items {
		foodID, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID món ăn không hợp lệ: "+item.ID, common.StatusBadRequest, err))
			return nil
		}
		lines = append(lines, ordersvc.OrderLine{FoodID: foodID, Unit: item.Unit})
	}

	result, err := h.orderService.Create(c.Context(), customerID, lines)
	if err == nil {
		logger.LogAction("create", "order", result.Order.ID.Hex(), c, map[string]interface{}{
			"orderId":     result.Order.OrderCode,
			"totalAmount": result.Order.TotalAmount,
		})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleGetOrders trả về lịch sử đơn của khách đang đăng nhập.
func (h *OrderHandler) HandleGetOrders(c fiber.Ctx) error {
	customerID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orders, err := h.orderService.FindByCustomer(c.Context(), customerID)
	h.HandleResponse(c, orders, err)
	return nil
}

// HandleGetOrderById trả về chi tiết một đơn hàng.
func (h *OrderHandler) HandleGetOrderById(c fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	order, err := h.orderService.FindOneById(c.Context(), orderID)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleGetVendorOrders trả về hàng đợi đơn của nhà hàng đang đăng nhập.
func (h *OrderHandler) HandleGetVendorOrders(c fiber.Ctx) error {
	vendorID, err := actorID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orders, err := h.orderService.FindByVendor(c.Context(), vendorID)
	h.HandleResponse(c, orders, err)
	return nil
}

// HandleProcessOrder chuyển trạng thái một đơn theo state machine.
func (h *OrderHandler) HandleProcessOrder(c fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn hàng không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	var input orderdto.ProcessOrderInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	order, err := h.orderService.UpdateStatus(c.Context(), orderID, input.Status, input.Remarks, input.ReadyTime)
	if err == nil {
		logger.LogAction("process", "order", order.ID.Hex(), c, map[string]interface{}{
			"orderId": order.OrderCode,
			"status":  order.Status,
		})
	}
	h.HandleResponse(c, order, err)
	return nil
}
