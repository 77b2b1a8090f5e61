package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"food_commerce/internal/database"
	"food_commerce/internal/global"
	"food_commerce/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình level / format
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục: config, validator, kết nối MongoDB
	InitGlobal()

	// Đăng ký các collection vào registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (INITMODE)
	InitDefaultData()

	defer func() {
		if err := database.CloseInstance(global.MongoDB_Session); err != nil {
			logger.GetErrorLogger().Errorf("Đóng kết nối MongoDB thất bại: %v", err)
		}
	}()

	// Chạy Fiber server trên main thread
	main_thread()
}
