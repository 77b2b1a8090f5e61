package main

import (
	"github.com/sirupsen/logrus"

	"food_commerce/internal/api/middleware"
	"food_commerce/internal/global"
)

// InitDefaultData khởi tạo dữ liệu vận hành ban đầu khi chạy INITMODE.
// Hệ thống không có tài khoản admin trong database: quyền admin xác định
// hoàn toàn qua role trong JWT. INITMODE phát một token admin bootstrap
// ra log để đội vận hành gọi các route /admin (onboarding nhà hàng).
func InitDefaultData() {
	if !global.ServerConfig.InitMode {
		return
	}

	signature, err := middleware.GenerateSignature(&middleware.TokenPayload{
		ID:       "000000000000000000000000",
		Email:    "admin@local",
		Role:     middleware.RoleAdmin,
		Verified: true,
	})
	if err != nil {
		logrus.Fatalf("Failed to generate bootstrap admin token: %v", err)
	}

	logrus.WithField("signature", signature).Warn("INITMODE: token admin bootstrap (hết hạn sau 30 ngày, không dùng cho production)")
}
