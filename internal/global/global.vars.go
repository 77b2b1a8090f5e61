package global

import (
	"food_commerce/config"
	"food_commerce/internal/registry"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Vendors   string // Tên collection cho nhà hàng (vendor)
	Foods     string // Tên collection cho món ăn
	Customers string // Tên collection cho khách hàng (cart nhúng trong document)
	Orders    string // Tên collection cho đơn hàng
}

// Các biến toàn cục
var MongoDB_Session *mongo.Client             // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration        // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{ // Tên các collection
	Vendors:   "vendors",
	Foods:     "foods",
	Customers: "customers",
	Orders:    "orders",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
