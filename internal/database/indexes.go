// Package database - Index cho các collection nghiệp vụ (compound, unique).
package database

import (
	"context"
	"strings"

	"food_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo các index cần thiết cho toàn bộ collection.
// Gọi một lần khi khởi động server, sau khi đã kết nối MongoDB.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// customers: email unique — mỗi email chỉ một tài khoản
	customers := db.Collection(global.MongoDB_ColNames.Customers)
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("customer_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: phone — tra cứu theo số điện thoại
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("customer_phone").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// vendors: email unique
	vendors := db.Collection(global.MongoDB_ColNames.Vendors)
	if _, err := vendors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("vendor_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// vendors: (pincode, serviceAvailable) — listing theo khu vực giao hàng
	if _, err := vendors.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pincode", Value: 1},
			{Key: "serviceAvailable", Value: 1},
		},
		Options: options.Index().SetName("vendor_pincode_service"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// foods: vendorId — lấy menu của một vendor
	foods := db.Collection(global.MongoDB_ColNames.Foods)
	if _, err := foods.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "vendorId", Value: 1}},
		Options: options.Index().SetName("food_vendor"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: orderId unique — mã đơn hiển thị không được trùng
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("order_code_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (customerId, createdAt) — lịch sử đơn của khách, mới nhất trước
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_customer_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (vendorId, orderStatus) — hàng đợi xử lý đơn của vendor
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "vendorId", Value: 1},
			{Key: "orderStatus", Value: 1},
		},
		Options: options.Index().SetName("order_vendor_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
