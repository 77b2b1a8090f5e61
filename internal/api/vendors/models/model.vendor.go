package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor đại diện cho một nhà hàng trên hệ thống.
// Mỗi vendor phục vụ một khu vực theo pincode; món ăn của vendor
// nằm trong collection foods với trường vendorId trỏ ngược về đây.
type Vendor struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`          // ID của nhà hàng
	Name             string             `json:"name" bson:"name"`                           // Tên nhà hàng
	OwnerName        string             `json:"ownerName" bson:"ownerName"`                 // Tên chủ nhà hàng
	FoodType         []string           `json:"foodType" bson:"foodType"`                   // Các loại món phục vụ
	Pincode          string             `json:"pincode" bson:"pincode"`                     // Mã khu vực phục vụ
	Address          string             `json:"address" bson:"address"`                     // Địa chỉ
	Phone            string             `json:"phone" bson:"phone"`                         // Số điện thoại
	Email            string             `json:"email" bson:"email"`                         // Email đăng nhập (unique)
	Password         string             `json:"-" bson:"password"`                          // Mật khẩu đã hash (không trả về client)
	ServiceAvailable bool               `json:"serviceAvailable" bson:"serviceAvailable"`   // Có đang nhận đơn không
	CoverImages      []string           `json:"coverImages,omitempty" bson:"coverImages"`   // Ảnh bìa
	Rating           float64            `json:"rating,omitempty" bson:"rating"`             // Điểm đánh giá trung bình
	CreatedAt        int64              `json:"createdAt,omitempty" bson:"createdAt"`       // Thời gian tạo (unix milli)
	UpdatedAt        int64              `json:"updatedAt,omitempty" bson:"updatedAt"`       // Thời gian cập nhật (unix milli)
}
