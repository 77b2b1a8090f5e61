// Package catalogsvc chứa service data access cho domain catalog (món ăn).
// File: service.catalog.food.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "food_commerce/internal/api/base/service"
	catalogmodels "food_commerce/internal/api/catalog/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
)

// FoodService là service quản lý món ăn (CRUD + tra cứu bulk).
type FoodService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Food]
}

// NewFoodService tạo mới FoodService
func NewFoodService() (*FoodService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Foods)
	if !exist {
		return nil, fmt.Errorf("failed to get foods collection: %v", common.ErrNotFound)
	}

	return &FoodService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Food](collection),
	}, nil
}

// FindManyByIds tra cứu bulk món ăn theo danh sách id bằng một query $in duy nhất.
// Id không tồn tại KHÔNG phải lỗi: kết quả có thể ít hơn số id truyền vào,
// caller (order builder, cart) tự đối chiếu phần thiếu.
func (s *FoodService) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]catalogmodels.Food, error) {
	return s.BaseServiceMongoImpl.FindManyByIds(ctx, ids)
}

// FindByVendor trả về toàn bộ menu của một nhà hàng.
func (s *FoodService) FindByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]catalogmodels.Food, error) {
	return s.Find(ctx, bson.M{"vendorId": vendorID}, nil)
}

// InsertOne tạo mới một món ăn (wrapper để package khác gọi được)
func (s *FoodService) InsertOne(ctx context.Context, data catalogmodels.Food) (catalogmodels.Food, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindOne tìm một món ăn theo filter (wrapper để package khác gọi được)
func (s *FoodService) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (catalogmodels.Food, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, filter, opts)
}
