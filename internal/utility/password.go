package utility

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"food_commerce/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt (salt được nhúng trong hash)
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			"Không thể băm mật khẩu",
			common.StatusInternalServerError,
			err,
		)
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu thô với hash đã lưu.
// Trả về ErrInvalidCredentials nếu không khớp.
func ComparePassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

// GenerateOtp sinh mã OTP 6 chữ số (100000 - 999999) bằng crypto/rand
func GenerateOtp() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeInternalServer,
			"Không thể sinh mã OTP",
			common.StatusInternalServerError,
			err,
		)
	}
	return int(n.Int64()) + 100000, nil
}
