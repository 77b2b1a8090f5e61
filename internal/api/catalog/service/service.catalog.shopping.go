// Package catalogsvc - Shopping service: tra cứu công khai theo pincode
// (danh sách nhà hàng đang phục vụ kèm menu, tìm món, món nhanh).
// File: service.catalog.shopping.go - giữ tên cấu trúc cũ.
package catalogsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "food_commerce/internal/api/base/service"
	catalogmodels "food_commerce/internal/api/catalog/models"
	vendormodels "food_commerce/internal/api/vendors/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/utility"
)

// Cache kết quả tra cứu availability theo pincode: dữ liệu thay đổi chậm
// (menu, trạng thái nhận đơn) nên chịu được độ trễ ngắn.
const availabilityCacheTTL = 30 * time.Second

// RestaurantListing là kết quả tra cứu shopping: nhà hàng kèm menu của nó.
type RestaurantListing struct {
	Vendor vendormodels.Vendor   `json:"vendor"` // Thông tin nhà hàng
	Foods  []catalogmodels.Food  `json:"foods"`  // Menu của nhà hàng
}

// ShoppingService là service tra cứu công khai (không cần đăng nhập).
// Chỉ đọc: danh sách nhà hàng theo pincode và menu của chúng.
type ShoppingService struct {
	vendorService     *basesvc.BaseServiceMongoImpl[vendormodels.Vendor]
	foodService       *FoodService
	availabilityCache *utility.Cache
}

// NewShoppingService tạo mới ShoppingService
func NewShoppingService() (*ShoppingService, error) {
	vendorCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	foodService, err := NewFoodService()
	if err != nil {
		return nil, err
	}

	return &ShoppingService{
		vendorService:     basesvc.NewBaseServiceMongo[vendormodels.Vendor](vendorCollection),
		foodService:       foodService,
		availabilityCache: utility.NewCache(availabilityCacheTTL, time.Minute),
	}, nil
}

// findServingVendors trả về các nhà hàng đang nhận đơn trong một pincode,
// sắp xếp theo rating giảm dần.
func (s *ShoppingService) findServingVendors(ctx context.Context, pincode string) ([]vendormodels.Vendor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	return s.vendorService.Find(ctx, bson.M{
		"pincode":          pincode,
		"serviceAvailable": true,
	}, opts)
}

// GetFoodAvailability trả về danh sách nhà hàng đang phục vụ trong pincode
// cùng menu của từng nhà hàng. Menu được nạp bằng một query $in duy nhất
// trên vendorId rồi gom nhóm lại (tương đương populate nhưng không N+1).
func (s *ShoppingService) GetFoodAvailability(ctx context.Context, pincode string) ([]RestaurantListing, error) {
	if cached, ok := s.availabilityCache.Get(pincode); ok {
		return cached.([]RestaurantListing), nil
	}

	vendors, err := s.findServingVendors(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, common.ErrNotFound
	}

	vendorIds := make([]primitive.ObjectID, 0, len(vendors))
	for _, v := range vendors {
		vendorIds = append(vendorIds, v.ID)
	}

	foods, err := s.foodService.Find(ctx, bson.M{"vendorId": bson.M{"$in": vendorIds}}, nil)
	if err != nil {
		return nil, err
	}

	// Gom món theo vendorId
	foodsByVendor := make(map[primitive.ObjectID][]catalogmodels.Food, len(vendors))
	for _, f := range foods {
		foodsByVendor[f.VendorID] = append(foodsByVendor[f.VendorID], f)
	}

	listings := make([]RestaurantListing, 0, len(vendors))
	for _, v := range vendors {
		menu := foodsByVendor[v.ID]
		if menu == nil {
			menu = []catalogmodels.Food{}
		}
		listings = append(listings, RestaurantListing{Vendor: v, Foods: menu})
	}

	s.availabilityCache.Set(pincode, listings)
	return listings, nil
}

// GetTopRestaurants trả về tối đa limit nhà hàng rating cao nhất trong pincode.
func (s *ShoppingService) GetTopRestaurants(ctx context.Context, pincode string, limit int64) ([]vendormodels.Vendor, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)
	vendors, err := s.vendorService.Find(ctx, bson.M{
		"pincode":          pincode,
		"serviceAvailable": true,
	}, opts)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, common.ErrNotFound
	}
	return vendors, nil
}

// GetFoodsIn30Min trả về các món có readyTime <= 30 phút trong pincode.
func (s *ShoppingService) GetFoodsIn30Min(ctx context.Context, pincode string) ([]catalogmodels.Food, error) {
	return s.searchFoods(ctx, pincode, bson.M{"readyTime": bson.M{"$lte": 30}})
}

// SearchFoods trả về toàn bộ món của các nhà hàng đang phục vụ trong pincode.
func (s *ShoppingService) SearchFoods(ctx context.Context, pincode string) ([]catalogmodels.Food, error) {
	return s.searchFoods(ctx, pincode, bson.M{})
}

// searchFoods tìm món của các nhà hàng đang phục vụ trong pincode,
// kết hợp thêm filter trên collection foods.
func (s *ShoppingService) searchFoods(ctx context.Context, pincode string, foodFilter bson.M) ([]catalogmodels.Food, error) {
	vendors, err := s.findServingVendors(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, common.ErrNotFound
	}

	vendorIds := make([]primitive.ObjectID, 0, len(vendors))
	for _, v := range vendors {
		vendorIds = append(vendorIds, v.ID)
	}

	foodFilter["vendorId"] = bson.M{"$in": vendorIds}
	foods, err := s.foodService.Find(ctx, foodFilter, nil)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, common.ErrNotFound
	}
	return foods, nil
}

// GetRestaurantById trả về một nhà hàng kèm menu của nó.
func (s *ShoppingService) GetRestaurantById(ctx context.Context, id primitive.ObjectID) (*RestaurantListing, error) {
	vendor, err := s.vendorService.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	foods, err := s.foodService.FindByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}
	if foods == nil {
		foods = []catalogmodels.Food{}
	}
	return &RestaurantListing{Vendor: vendor, Foods: foods}, nil
}
