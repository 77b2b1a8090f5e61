// Package dto chứa các struct input cho domain vendor.
// DTO mang tag bson trùng tên field model để transform qua bson round-trip.
package dto

// VendorCreateInput là input admin tạo mới nhà hàng (onboarding).
type VendorCreateInput struct {
	Name      string   `json:"name" bson:"name" validate:"required,min=2,max=128,no_xss"`
	OwnerName string   `json:"ownerName" bson:"ownerName" validate:"required,min=2,max=128"`
	FoodType  []string `json:"foodType" bson:"foodType" validate:"required,min=1"`
	Pincode   string   `json:"pincode" bson:"pincode" validate:"required,min=4,max=10"`
	Address   string   `json:"address" bson:"address" validate:"required,max=256"`
	Phone     string   `json:"phone" bson:"phone" validate:"required,min=7,max=14"`
	Email     string   `json:"email" bson:"email" validate:"required,email"`
	Password  string   `json:"password" bson:"-" validate:"required,min=8,max=64,strong_password"`
}

// VendorLoginInput là input đăng nhập nhà hàng.
type VendorLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

// VendorUpdateInput là input nhà hàng sửa hồ sơ (partial update).
type VendorUpdateInput struct {
	Name     string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Address  string   `json:"address,omitempty" bson:"address,omitempty" validate:"omitempty,max=256"`
	Phone    string   `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,min=7,max=14"`
	FoodType []string `json:"foodType,omitempty" bson:"foodType,omitempty"`
}

// VendorAuthResponse là payload trả về sau khi nhà hàng đăng nhập.
type VendorAuthResponse struct {
	Signature string `json:"signature"` // JWT token
	Email     string `json:"email"`     // Email nhà hàng
	Name      string `json:"name"`      // Tên nhà hàng
}
