// Package vendorsvc chứa service cho domain vendor: onboarding (admin),
// đăng nhập và hồ sơ nhà hàng.
// File: service.vendor.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package vendorsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "food_commerce/internal/api/base/service"
	"food_commerce/internal/api/middleware"
	vendordto "food_commerce/internal/api/vendors/dto"
	vendormodels "food_commerce/internal/api/vendors/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/utility"
)

// VendorService là service quản lý nhà hàng.
type VendorService struct {
	*basesvc.BaseServiceMongoImpl[vendormodels.Vendor]
}

// NewVendorService tạo mới VendorService
func NewVendorService() (*VendorService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Vendors)
	if !exist {
		return nil, fmt.Errorf("failed to get vendors collection: %v", common.ErrNotFound)
	}

	return &VendorService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[vendormodels.Vendor](collection),
	}, nil
}

// CreateVendor tạo nhà hàng mới (admin onboarding). Nhà hàng mới
// mặc định chưa nhận đơn cho tới khi tự bật serviceAvailable.
func (s *VendorService) CreateVendor(ctx context.Context, input *vendordto.VendorCreateInput) (vendormodels.Vendor, error) {
	if err := utility.ValidateEmail(input.Email); err != nil {
		return vendormodels.Vendor{}, err
	}
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return vendormodels.Vendor{}, err
	}
	if exists {
		return vendormodels.Vendor{}, common.ErrDuplicate
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return vendormodels.Vendor{}, err
	}

	vendor := vendormodels.Vendor{
		Name:             input.Name,
		OwnerName:        input.OwnerName,
		FoodType:         input.FoodType,
		Pincode:          input.Pincode,
		Address:          input.Address,
		Phone:            input.Phone,
		Email:            input.Email,
		Password:         hashed,
		ServiceAvailable: false,
		CoverImages:      []string{},
		Rating:           0,
	}
	return s.InsertOne(ctx, vendor)
}

// Login xác thực email + mật khẩu của nhà hàng và trả về signature.
func (s *VendorService) Login(ctx context.Context, input *vendordto.VendorLoginInput) (*vendordto.VendorAuthResponse, error) {
	vendor, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Không tiết lộ tài khoản có tồn tại hay không
		return nil, common.ErrInvalidCredentials
	}
	if err := utility.ComparePassword(vendor.Password, input.Password); err != nil {
		return nil, err
	}

	signature, err := middleware.GenerateSignature(&middleware.TokenPayload{
		ID:       vendor.ID.Hex(),
		Email:    vendor.Email,
		Role:     middleware.RoleVendor,
		Verified: true,
	})
	if err != nil {
		return nil, err
	}
	return &vendordto.VendorAuthResponse{
		Signature: signature,
		Email:     vendor.Email,
		Name:      vendor.Name,
	}, nil
}

// EditProfile cập nhật các trường hồ sơ có giá trị trong input.
func (s *VendorService) EditProfile(ctx context.Context, vendorID primitive.ObjectID, input *vendordto.VendorUpdateInput) (vendormodels.Vendor, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if len(input.FoodType) > 0 {
		set["foodType"] = input.FoodType
	}
	if len(set) == 0 {
		return vendormodels.Vendor{}, common.ErrInvalidInput
	}
	return s.UpdateById(ctx, vendorID, &basesvc.UpdateData{Set: set})
}

// ToggleService đảo trạng thái nhận đơn của nhà hàng.
func (s *VendorService) ToggleService(ctx context.Context, vendorID primitive.ObjectID) (vendormodels.Vendor, error) {
	vendor, err := s.FindOneById(ctx, vendorID)
	if err != nil {
		return vendormodels.Vendor{}, err
	}
	return s.UpdateById(ctx, vendorID, &basesvc.UpdateData{
		Set: map[string]interface{}{"serviceAvailable": !vendor.ServiceAvailable},
	})
}
