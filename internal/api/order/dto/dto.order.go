// Package dto chứa các struct input cho domain order.
package dto

// OrderLineInput là một dòng yêu cầu đặt hàng: id món + số lượng.
type OrderLineInput struct {
	ID   string `json:"_id" validate:"required,len=24,hexadecimal"` // ObjectID hex của món ăn
	Unit int    `json:"unit" validate:"required,gt=0"`              // Số lượng
}

// CreateOrderInput là input tạo đơn hàng.
type CreateOrderInput struct {
	Items []OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// ProcessOrderInput là input nhà hàng xử lý đơn: chuyển trạng thái,
// kèm ghi chú và thời gian chuẩn bị dự kiến nếu có.
type ProcessOrderInput struct {
	Status    string `json:"status" validate:"required,oneof=waiting accepted preparing ready delivered cancelled"`
	Remarks   string `json:"remarks,omitempty" validate:"max=512,no_xss"`
	ReadyTime int    `json:"readyTime,omitempty" validate:"omitempty,gt=0"`
}
