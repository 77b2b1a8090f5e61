// Package ordersvc - state machine trạng thái đơn hàng.
// File: service.order.status.go - giữ tên cấu trúc cũ.
package ordersvc

// Các trạng thái đơn hàng. Enum đóng: mọi giá trị khác bị từ chối.
const (
	StatusWaiting   = "waiting"   // Mới tạo, chờ nhà hàng nhận
	StatusAccepted  = "accepted"  // Nhà hàng đã nhận đơn
	StatusPreparing = "preparing" // Đang chuẩn bị
	StatusReady     = "ready"     // Sẵn sàng giao
	StatusDelivered = "delivered" // Đã giao (terminal)
	StatusCancelled = "cancelled" // Đã hủy (terminal)
)

// transitions liệt kê các bước chuyển hợp lệ. Trạng thái không có entry
// (delivered, cancelled) là terminal.
var transitions = map[string][]string{
	StatusWaiting:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered},
}

// IsValidStatus kiểm tra một chuỗi có thuộc enum trạng thái không.
func IsValidStatus(status string) bool {
	switch status {
	case StatusWaiting, StatusAccepted, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransition kiểm tra bước chuyển from → to có hợp lệ không.
// Chuyển về chính trạng thái hiện tại luôn hợp lệ (idempotent theo giá trị),
// kể cả với trạng thái terminal.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
