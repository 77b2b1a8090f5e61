package middleware

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/logger"
)

// Các role được hệ thống công nhận
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

// TokenPayload chứa data được mã hóa trong JWT token.
type TokenPayload struct {
	ID       string `json:"id"`       // ObjectID hex của customer hoặc vendor
	Email    string `json:"email"`    // Email của chủ token
	Role     string `json:"role"`     // customer | vendor | admin
	Verified bool   `json:"verified"` // Đã xác minh OTP chưa (chỉ áp dụng với customer)
	jwt.StandardClaims
}

// GenerateSignature tạo JWT token có thời hạn 30 ngày từ payload.
// Secret lấy từ cấu hình server (JWT_SECRET).
func GenerateSignature(payload *TokenPayload) (string, error) {
	now := time.Now()
	payload.IssuedAt = now.Unix()
	payload.ExpiresAt = now.Add(30 * 24 * time.Hour).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(
			common.ErrCodeAuthToken,
			"Không thể tạo token xác thực",
			common.StatusInternalServerError,
			err,
		)
	}
	return signed, nil
}

// ValidateSignature kiểm tra và giải mã JWT token.
// Trả về payload nếu token hợp lệ và còn hạn.
func ValidateSignature(tokenString string) (*TokenPayload, error) {
	payload := &TokenPayload{}
	token, err := jwt.ParseWithClaims(tokenString, payload, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return payload, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requireRole là role bắt buộc của token ("" nghĩa là chỉ cần token hợp lệ).
// Sau khi xác thực thành công, payload được lưu vào Locals:
// actor_id, actor_email, actor_role, actor_verified.
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		payload, err := ValidateSignature(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token validation failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Kiểm tra role nếu route yêu cầu
		if requireRole != "" && payload.Role != requireRole {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":          c.Path(),
				"actor_id":      payload.ID,
				"actor_role":    payload.Role,
				"required_role": requireRole,
			}).Warn("❌ [AUTH] Role mismatch")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập tài nguyên này",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin actor vào context
		c.Locals("actor_id", payload.ID)
		c.Locals("actor_email", payload.Email)
		c.Locals("actor_role", payload.Role)
		c.Locals("actor_verified", payload.Verified)

		return c.Next()
	}
}
