package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "food_commerce/internal/api/catalog/models"
)

// CartItem là một dòng trong giỏ hàng, unique theo FoodID.
// Food là snapshot tại thời điểm thêm vào giỏ; giá chốt đơn được
// tính lại từ catalog khi tạo đơn, không phải từ snapshot này.
type CartItem struct {
	FoodID primitive.ObjectID `json:"foodId" bson:"foodId"` // ID món ăn (khóa duy nhất trong giỏ)
	Food   catalogmodels.Food `json:"food" bson:"food"`     // Snapshot món ăn lúc thêm vào giỏ
	Unit   int                `json:"unit" bson:"unit"`     // Số lượng (> 0)
}

// Customer đại diện cho một khách hàng.
// Giỏ hàng nhúng trực tiếp trong document; danh sách đơn hàng là
// mảng tham chiếu ObjectID sang collection orders.
type Customer struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`      // ID khách hàng
	Email     string               `json:"email" bson:"email"`                     // Email đăng nhập (unique)
	Password  string               `json:"-" bson:"password"`                      // Mật khẩu đã hash (không trả về client)
	Phone     string               `json:"phone" bson:"phone"`                     // Số điện thoại
	FirstName string               `json:"firstName,omitempty" bson:"firstName"`   // Tên
	LastName  string               `json:"lastName,omitempty" bson:"lastName"`     // Họ
	Address   string               `json:"address,omitempty" bson:"address"`       // Địa chỉ giao hàng
	Verified  bool                 `json:"verified" bson:"verified"`               // Đã xác minh OTP chưa
	Otp       int                  `json:"-" bson:"otp"`                           // Mã OTP hiện hành (không trả về client)
	OtpExpiry int64                `json:"-" bson:"otpExpiry"`                     // Hạn OTP (unix milli)
	Lat       float64              `json:"lat,omitempty" bson:"lat"`               // Vĩ độ giao hàng
	Lng       float64              `json:"lng,omitempty" bson:"lng"`               // Kinh độ giao hàng
	Cart      []CartItem           `json:"cart" bson:"cart"`                       // Giỏ hàng nhúng
	Orders    []primitive.ObjectID `json:"orders,omitempty" bson:"orders"`         // Lịch sử đơn hàng (tham chiếu)
	CreatedAt int64                `json:"createdAt,omitempty" bson:"createdAt"`   // Thời gian tạo (unix milli)
	UpdatedAt int64                `json:"updatedAt,omitempty" bson:"updatedAt"`   // Thời gian cập nhật (unix milli)
}
