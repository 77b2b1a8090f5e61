// Package customersvc - CartService quản lý giỏ hàng nhúng trong document khách hàng.
// File: service.customer.cart.go - giữ tên cấu trúc cũ.
package customersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "food_commerce/internal/api/base/service"
	catalogsvc "food_commerce/internal/api/catalog/service"
	customermodels "food_commerce/internal/api/customer/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/utility"
)

// ApplyCartItem áp một thao tác lên giỏ hàng và trả về giỏ mới.
// Quy tắc: giỏ unique theo FoodID; item.Unit <= 0 xóa dòng tương ứng;
// FoodID đã có thì thay cả unit lẫn snapshot; chưa có thì append.
// Hàm thuần, không đụng tới database.
func ApplyCartItem(cart []customermodels.CartItem, item customermodels.CartItem) []customermodels.CartItem {
	result := make([]customermodels.CartItem, 0, len(cart)+1)
	replaced := false
	for _, existing := range cart {
		if existing.FoodID == item.FoodID {
			if item.Unit > 0 {
				result = append(result, item)
			}
			replaced = true
			continue
		}
		result = append(result, existing)
	}
	if !replaced && item.Unit > 0 {
		result = append(result, item)
	}
	return result
}

// CartService đọc / ghi giỏ hàng. Mọi thao tác ghi đều giữ mutex theo
// customer id để chống hỏng dữ liệu khi hai request cùng read-modify-write
// một giỏ.
type CartService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
	foodService *catalogsvc.FoodService
	locks       *utility.KeyedMutex
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	foodService, err := catalogsvc.NewFoodService()
	if err != nil {
		return nil, fmt.Errorf("failed to create food service: %v", err)
	}

	return &CartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[customermodels.Customer](collection),
		foodService:          foodService,
		locks:                utility.NewKeyedMutex(),
	}, nil
}

// AddOrUpdateItem upsert một dòng giỏ hàng cho khách. unit <= 0 xóa món
// khỏi giỏ (idempotent, không cần món còn tồn tại trong catalog).
// Trả về giỏ sau khi thay đổi.
func (s *CartService) AddOrUpdateItem(ctx context.Context, customerID, foodID primitive.ObjectID, unit int) ([]customermodels.CartItem, error) {
	key := customerID.Hex()
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	customer, err := s.FindOneById(ctx, customerID)
	if err != nil {
		return nil, err
	}

	item := customermodels.CartItem{FoodID: foodID, Unit: unit}
	if unit > 0 {
		food, err := s.foodService.FindOneById(ctx, foodID)
		if err != nil {
			return nil, err
		}
		item.Food = food
	}

	cart := ApplyCartItem(customer.Cart, item)
	updated, err := s.UpdateById(ctx, customerID, &basesvc.UpdateData{
		Set: map[string]interface{}{"cart": cart},
	})
	if err != nil {
		return nil, err
	}
	if updated.Cart == nil {
		return []customermodels.CartItem{}, nil
	}
	return updated.Cart, nil
}

// GetCart trả về giỏ hàng hiện tại của khách. Giỏ rỗng không phải lỗi.
func (s *CartService) GetCart(ctx context.Context, customerID primitive.ObjectID) ([]customermodels.CartItem, error) {
	customer, err := s.FindOneById(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Cart == nil {
		return []customermodels.CartItem{}, nil
	}
	return customer.Cart, nil
}

// ClearCart làm rỗng giỏ hàng (idempotent) và trả về hồ sơ sau cập nhật.
func (s *CartService) ClearCart(ctx context.Context, customerID primitive.ObjectID) (customermodels.Customer, error) {
	key := customerID.Hex()
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	return s.UpdateById(ctx, customerID, &basesvc.UpdateData{
		Set: map[string]interface{}{"cart": []customermodels.CartItem{}},
	})
}
