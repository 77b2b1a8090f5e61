package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "food_commerce/internal/api/catalog/models"
)

// OrderItem là một dòng của đơn hàng. Food là snapshot chốt tại thời điểm
// tạo đơn: giá trong snapshot chính là giá đã tính vào TotalAmount, thay
// đổi catalog về sau không ảnh hưởng đơn đã tạo.
type OrderItem struct {
	Food     catalogmodels.Food `json:"food" bson:"food"`         // Snapshot món ăn lúc chốt đơn
	Unit     int                `json:"unit" bson:"unit"`         // Số lượng
	Subtotal float64            `json:"subtotal" bson:"subtotal"` // price * unit tại thời điểm chốt
}

// Order đại diện cho một đơn hàng của khách tại một nhà hàng.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`              // ID đơn hàng
	OrderCode       string             `json:"orderId" bson:"orderId"`                         // Mã đơn ngắn cho khách (unique)
	CustomerID      primitive.ObjectID `json:"customerId" bson:"customerId"`                   // Khách đặt đơn
	VendorID        primitive.ObjectID `json:"vendorId" bson:"vendorId"`                       // Nhà hàng thực hiện đơn
	Items           []OrderItem        `json:"items" bson:"items"`                             // Các dòng đơn (snapshot)
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`                 // Tổng tiền đã chốt
	OrderDate       int64              `json:"orderDate" bson:"orderDate"`                     // Thời điểm đặt (unix milli)
	PaidThrough     string             `json:"paidThrough" bson:"paidThrough"`                 // Phương thức thanh toán (COD)
	PaymentResponse string             `json:"paymentResponse" bson:"paymentResponse"`         // Phản hồi cổng thanh toán (rỗng với COD)
	Status          string             `json:"orderStatus" bson:"orderStatus"`                 // Trạng thái hiện tại (xem state machine)
	Remarks         string             `json:"remarks,omitempty" bson:"remarks"`               // Ghi chú của nhà hàng
	ReadyTime       int                `json:"readyTime,omitempty" bson:"readyTime"`           // Thời gian chuẩn bị dự kiến (phút)
	CreatedAt       int64              `json:"createdAt,omitempty" bson:"createdAt"`           // Thời gian tạo (unix milli)
	UpdatedAt       int64              `json:"updatedAt,omitempty" bson:"updatedAt"`           // Thời gian cập nhật (unix milli)
}
