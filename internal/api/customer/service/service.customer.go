// Package customersvc chứa service cho domain customer: tài khoản
// (signup / login / OTP / profile) và giỏ hàng nhúng.
// File: service.customer.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package customersvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "food_commerce/internal/api/base/service"
	customermodels "food_commerce/internal/api/customer/models"
	customerdto "food_commerce/internal/api/customer/dto"
	"food_commerce/internal/api/middleware"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/logger"
	"food_commerce/internal/utility"
)

// otpTTL là thời gian hiệu lực của một mã OTP.
const otpTTL = 30 * time.Minute

// CustomerService là service quản lý tài khoản khách hàng.
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[customermodels.Customer]
	mailer *OtpMailer
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}

	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[customermodels.Customer](collection),
		mailer:               NewOtpMailer(),
	}, nil
}

// issueSignature tạo JWT cho một khách hàng.
func issueSignature(customer *customermodels.Customer) (string, error) {
	return middleware.GenerateSignature(&middleware.TokenPayload{
		ID:       customer.ID.Hex(),
		Email:    customer.Email,
		Role:     middleware.RoleCustomer,
		Verified: customer.Verified,
	})
}

// sendOtpAsync gửi OTP qua email trên goroutine riêng, lỗi gửi chỉ được log
// chứ không làm hỏng flow đăng ký.
func (s *CustomerService) sendOtpAsync(email string, otp int) {
	utility.GoProtect(func() {
		if err := s.mailer.SendOtp(email, otp); err != nil {
			logger.GetErrorLogger().WithField("email", email).Errorf("Gửi OTP thất bại: %v", err)
		}
	})
}

// Signup đăng ký tài khoản mới: hash mật khẩu, sinh OTP, gửi email xác minh
// và trả về signature (chưa verified).
func (s *CustomerService) Signup(ctx context.Context, input *customerdto.CustomerSignupInput) (*customerdto.AuthResponse, error) {
	if err := utility.ValidateEmail(input.Email); err != nil {
		return nil, err
	}
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrDuplicate
	}

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	otp, err := utility.GenerateOtp()
	if err != nil {
		return nil, err
	}

	customer := customermodels.Customer{
		Email:     input.Email,
		Password:  hashed,
		Phone:     input.Phone,
		Verified:  false,
		Otp:       otp,
		OtpExpiry: utility.UnixMilli(time.Now().Add(otpTTL)),
		Cart:      []customermodels.CartItem{},
		Orders:    []primitive.ObjectID{},
	}
	created, err := s.InsertOne(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.sendOtpAsync(created.Email, otp)

	signature, err := issueSignature(&created)
	if err != nil {
		return nil, err
	}
	return &customerdto.AuthResponse{
		Signature: signature,
		Email:     created.Email,
		Verified:  created.Verified,
	}, nil
}

// Login xác thực email + mật khẩu và trả về signature.
func (s *CustomerService) Login(ctx context.Context, input *customerdto.CustomerLoginInput) (*customerdto.AuthResponse, error) {
	customer, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Không tiết lộ tài khoản có tồn tại hay không
		return nil, common.ErrInvalidCredentials
	}
	if err := utility.ComparePassword(customer.Password, input.Password); err != nil {
		return nil, err
	}

	signature, err := issueSignature(&customer)
	if err != nil {
		return nil, err
	}
	return &customerdto.AuthResponse{
		Signature: signature,
		Email:     customer.Email,
		Verified:  customer.Verified,
	}, nil
}

// Verify kiểm tra OTP của khách hàng đang đăng nhập. OTP đúng và còn hạn
// thì đánh dấu verified và phát lại signature mới.
func (s *CustomerService) Verify(ctx context.Context, customerID primitive.ObjectID, otp int) (*customerdto.AuthResponse, error) {
	customer, err := s.FindOneById(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.Otp != otp || utility.CurrentTimeInMilli() > customer.OtpExpiry {
		return nil, common.ErrOtpInvalid
	}

	updated, err := s.UpdateById(ctx, customerID, &basesvc.UpdateData{
		Set: map[string]interface{}{"verified": true},
	})
	if err != nil {
		return nil, err
	}

	signature, err := issueSignature(&updated)
	if err != nil {
		return nil, err
	}
	return &customerdto.AuthResponse{
		Signature: signature,
		Email:     updated.Email,
		Verified:  updated.Verified,
	}, nil
}

// RequestOtp sinh OTP mới cho khách hàng đang đăng nhập và gửi lại email.
func (s *CustomerService) RequestOtp(ctx context.Context, customerID primitive.ObjectID) error {
	customer, err := s.FindOneById(ctx, customerID)
	if err != nil {
		return err
	}

	otp, err := utility.GenerateOtp()
	if err != nil {
		return err
	}
	_, err = s.UpdateById(ctx, customerID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"otp":       otp,
			"otpExpiry": utility.UnixMilli(time.Now().Add(otpTTL)),
		},
	})
	if err != nil {
		return err
	}

	s.sendOtpAsync(customer.Email, otp)
	return nil
}

// GetProfile trả về hồ sơ khách hàng.
func (s *CustomerService) GetProfile(ctx context.Context, customerID primitive.ObjectID) (customermodels.Customer, error) {
	return s.FindOneById(ctx, customerID)
}

// EditProfile cập nhật các trường hồ sơ có giá trị trong input.
func (s *CustomerService) EditProfile(ctx context.Context, customerID primitive.ObjectID, input *customerdto.CustomerProfileEditInput) (customermodels.Customer, error) {
	set := map[string]interface{}{}
	if input.FirstName != "" {
		set["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		set["lastName"] = input.LastName
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if len(set) == 0 {
		return customermodels.Customer{}, common.ErrInvalidInput
	}
	return s.UpdateById(ctx, customerID, &basesvc.UpdateData{Set: set})
}
