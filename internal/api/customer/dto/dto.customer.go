// Package dto chứa các struct input cho domain customer.
package dto

// CustomerSignupInput là input đăng ký tài khoản khách hàng.
type CustomerSignupInput struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=14"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

// CustomerLoginInput là input đăng nhập.
type CustomerLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

// CustomerVerifyInput là input xác minh OTP.
type CustomerVerifyInput struct {
	Otp int `json:"otp" validate:"required,gte=100000,lte=999999"`
}

// CustomerProfileEditInput là input sửa hồ sơ (partial update).
type CustomerProfileEditInput struct {
	FirstName string `json:"firstName,omitempty" validate:"omitempty,min=1,max=64"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,min=1,max=64"`
	Address   string `json:"address,omitempty" validate:"omitempty,min=1,max=256"`
}

// CartItemInput là input thêm / sửa một dòng giỏ hàng.
// Unit <= 0 nghĩa là xóa món khỏi giỏ.
type CartItemInput struct {
	ID   string `json:"_id" validate:"required,len=24,hexadecimal"` // ObjectID hex của món ăn
	Unit int    `json:"unit"`                                       // Số lượng; <= 0 là xóa
}

// AuthResponse là payload trả về sau signup / login / verify.
type AuthResponse struct {
	Signature string `json:"signature"` // JWT token
	Email     string `json:"email"`     // Email của tài khoản
	Verified  bool   `json:"verified"`  // Trạng thái xác minh OTP
}
