package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Nó chứa thông tin server, cơ sở dữ liệu và các collaborator bên ngoài.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mẫu
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// SMTP Configuration (gửi OTP qua email)
	SMTP_Host      string `env:"SMTP_HOST"`                                 // SMTP host
	SMTP_Port      int    `env:"SMTP_PORT" envDefault:"587"`                // SMTP port
	SMTP_Username  string `env:"SMTP_USERNAME"`                             // SMTP username
	SMTP_Password  string `env:"SMTP_PASSWORD"`                             // SMTP password
	SMTP_FromName  string `env:"SMTP_FROM_NAME" envDefault:"Food Commerce"` // Tên người gửi
	SMTP_FromEmail string `env:"SMTP_FROM_EMAIL"`                           // Email người gửi

	// Order Configuration
	OrderCodeMaxRetry int `env:"ORDER_CODE_MAX_RETRY" envDefault:"5"` // Số lần thử lại khi mã đơn hàng bị trùng
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên các thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
// (hoặc file env theo GO_ENV nếu không cung cấp) rồi parse qua biến môi trường.
func NewConfig(files ...string) *Configuration {
	if len(files) == 0 {
		if envPath := getEnvPath(); envPath != "" {
			files = append(files, envPath)
		}
	}

	// Nạp file env nếu tồn tại; biến môi trường thật vẫn được ưu tiên
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				fmt.Printf("Không thể nạp file env %s: %v\n", file, err)
			}
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Sprintf("Lỗi parse cấu hình từ biến môi trường: %v", err))
	}
	return cfg
}
