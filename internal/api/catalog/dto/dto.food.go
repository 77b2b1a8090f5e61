// Package dto chứa các struct input cho domain catalog.
// DTO mang tag bson trùng tên field model để transform qua bson round-trip.
package dto

// FoodCreateInput là input tạo mới món ăn (vendor thêm vào menu của mình).
// VendorID không nhận từ body mà lấy từ token của vendor đang đăng nhập.
type FoodCreateInput struct {
	Name        string   `json:"name" bson:"name" validate:"required,min=2,max=128,no_xss"`
	Description string   `json:"description" bson:"description,omitempty" validate:"max=1024,no_xss"`
	Category    string   `json:"category" bson:"category,omitempty" validate:"max=64"`
	FoodType    string   `json:"foodType" bson:"foodType" validate:"required,max=64"`
	ReadyTime   int      `json:"readyTime" bson:"readyTime" validate:"required,gt=0"`
	Price       float64  `json:"price" bson:"price" validate:"required,gt=0"`
	Images      []string `json:"images" bson:"images,omitempty"`
}

// FoodUpdateInput là input cập nhật món ăn (partial update).
type FoodUpdateInput struct {
	Name        string   `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=2,max=128"`
	Description string   `json:"description,omitempty" bson:"description,omitempty" validate:"max=1024"`
	Category    string   `json:"category,omitempty" bson:"category,omitempty" validate:"max=64"`
	FoodType    string   `json:"foodType,omitempty" bson:"foodType,omitempty" validate:"max=64"`
	ReadyTime   int      `json:"readyTime,omitempty" bson:"readyTime,omitempty" validate:"omitempty,gt=0"`
	Price       float64  `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gt=0"`
	Images      []string `json:"images,omitempty" bson:"images,omitempty"`
}
