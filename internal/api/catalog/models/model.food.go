package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food đại diện cho một món ăn trong catalog của một nhà hàng.
// Cart và Order luôn lưu snapshot của Food tại thời điểm thao tác,
// nên thay đổi giá sau đó không ảnh hưởng tới đơn đã tạo.
type Food struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`        // ID của món ăn
	VendorID    primitive.ObjectID `json:"vendorId" bson:"vendorId"`                 // ID nhà hàng sở hữu món ăn
	Name        string             `json:"name" bson:"name"`                         // Tên món ăn
	Description string             `json:"description,omitempty" bson:"description"` // Mô tả
	Category    string             `json:"category,omitempty" bson:"category"`       // Nhóm món (ví dụ: đồ uống, món chính)
	FoodType    string             `json:"foodType" bson:"foodType"`                 // Loại món (chay / mặn / ...)
	ReadyTime   int                `json:"readyTime" bson:"readyTime"`               // Thời gian chuẩn bị (phút)
	Price       float64            `json:"price" bson:"price"`                       // Đơn giá
	Rating      float64            `json:"rating,omitempty" bson:"rating"`           // Điểm đánh giá trung bình
	Images      []string           `json:"images,omitempty" bson:"images"`           // Danh sách ảnh
	CreatedAt   int64              `json:"createdAt,omitempty" bson:"createdAt"`     // Thời gian tạo (unix milli)
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt"`     // Thời gian cập nhật (unix milli)
}
