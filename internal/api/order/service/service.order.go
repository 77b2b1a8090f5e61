// Package ordersvc chứa service quản lý đơn hàng: tạo đơn từ giỏ,
// chuyển trạng thái và truy vấn theo khách / nhà hàng.
// File: service.order.go - giữ tên cấu trúc cũ (service.<domain>.<entity>.go).
package ordersvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "food_commerce/internal/api/base/service"
	catalogmodels "food_commerce/internal/api/catalog/models"
	catalogsvc "food_commerce/internal/api/catalog/service"
	customermodels "food_commerce/internal/api/customer/models"
	ordermodels "food_commerce/internal/api/order/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
	"food_commerce/internal/logger"
	"food_commerce/internal/utility"
)

// PaidThroughCOD là phương thức thanh toán duy nhất hiện hỗ trợ.
const PaidThroughCOD = "COD"

// CreateResult là kết quả tạo đơn: đơn đã ghi và các món bị loại vì
// không còn trong catalog (client dùng để báo cho người dùng).
type CreateResult struct {
	Order        ordermodels.Order `json:"order"`        // Đơn hàng vừa tạo
	DroppedItems []string          `json:"droppedItems"` // Id hex các món bị loại khỏi đơn
}

// catalogLookup là phần của FoodService mà OrderService cần: tra cứu bulk.
type catalogLookup interface {
	FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]catalogmodels.Food, error)
}

// OrderService là service quản lý đơn hàng.
type OrderService struct {
	basesvc.BaseServiceMongo[ordermodels.Order]
	customerService basesvc.BaseServiceMongo[customermodels.Customer]
	foodService     catalogLookup

	// runTxn chạy fn trong một transaction Mongo.
	runTxn func(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error)
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	customerCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	foodService, err := catalogsvc.NewFoodService()
	if err != nil {
		return nil, fmt.Errorf("failed to create food service: %v", err)
	}

	return &OrderService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[ordermodels.Order](orderCollection),
		customerService:  basesvc.NewBaseServiceMongo[customermodels.Customer](customerCollection),
		foodService:      foodService,
		runTxn:           runInTransaction,
	}, nil
}

// runInTransaction mở session từ client toàn cục và chạy fn trong transaction.
func runInTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.NewError(common.ErrCodeDatabaseConnection, common.MsgDatabaseError, common.StatusServiceUnavailable, err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}

// nextOrderCode sinh mã đơn ngắn chưa tồn tại, thử lại tối đa theo cấu hình.
func (s *OrderService) nextOrderCode(ctx context.Context) (string, error) {
	maxRetry := global.ServerConfig.OrderCodeMaxRetry
	if maxRetry <= 0 {
		maxRetry = 1
	}
	for i := 0; i < maxRetry; i++ {
		code, err := GenerateOrderCode()
		if err != nil {
			return "", common.NewError(common.ErrCodeInternalServer, "Không sinh được mã đơn hàng", common.StatusInternalServerError, err)
		}
		exists, err := s.DocumentExists(ctx, bson.M{"orderId": code})
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		utility.LogWarning("Mã đơn bị trùng, sinh lại", "orderId", code, "attempt", i+1)
	}
	return "", common.ErrOrderCodeExhaust
}

// orderHistoryUpdate là document cập nhật hồ sơ khách khi đơn được ghi:
// append id đơn vào lịch sử và làm rỗng giỏ.
func orderHistoryUpdate(orderID primitive.ObjectID) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Push: map[string]interface{}{"orders": orderID},
		Set:  map[string]interface{}{"cart": []customermodels.CartItem{}},
	}
}

// Create tạo đơn hàng từ danh sách dòng yêu cầu của khách:
// đối soát với catalog bằng một query bulk, chốt snapshot giá, sinh mã đơn,
// rồi ghi đơn + cập nhật hồ sơ khách (append lịch sử, xóa giỏ) trong cùng
// một transaction.
func (s *OrderService) Create(ctx context.Context, customerID primitive.ObjectID, lines []OrderLine) (*CreateResult, error) {
	customer, err := s.customerService.FindOneById(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, common.ErrEmptyCart
	}

	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.FoodID)
	}
	foods, err := s.foodService.FindManyByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	items, netAmount, dropped := ReconcileCart(foods, lines)
	if len(items) == 0 {
		return nil, common.ErrNoValidItems
	}

	code, err := s.nextOrderCode(ctx)
	if err != nil {
		return nil, err
	}

	now := utility.CurrentTimeInMilli()
	order := ordermodels.Order{
		ID:              primitive.NewObjectID(),
		OrderCode:       code,
		CustomerID:      customer.ID,
		VendorID:        items[0].Food.VendorID,
		Items:           items,
		TotalAmount:     netAmount,
		OrderDate:       now,
		PaidThrough:     PaidThroughCOD,
		PaymentResponse: "",
		Status:          StatusWaiting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Ghi đơn và cập nhật hồ sơ khách trong cùng một transaction:
	// hoặc cả đơn lẫn lịch sử + giỏ rỗng cùng xuất hiện, hoặc không gì cả.
	_, err = s.runTxn(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.InsertOne(sc, order); err != nil {
			return nil, err
		}
		if _, err := s.customerService.UpdateOne(sc, bson.M{"_id": customer.ID}, orderHistoryUpdate(order.ID), nil); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	droppedHex := make([]string, 0, len(dropped))
	for _, id := range dropped {
		droppedHex = append(droppedHex, utility.ObjectID2String(id))
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"orderId":     order.OrderCode,
		"customerId":  customer.ID.Hex(),
		"vendorId":    order.VendorID.Hex(),
		"totalAmount": order.TotalAmount,
		"dropped":     len(droppedHex),
	}).Info("Tạo đơn hàng thành công")

	return &CreateResult{Order: order, DroppedItems: droppedHex}, nil
}

// UpdateStatus chuyển trạng thái một đơn theo state machine. remarks và
// readyTime chỉ ghi đè khi có giá trị.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status, remarks string, readyTime int) (ordermodels.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return ordermodels.Order{}, err
	}
	if !CanTransition(order.Status, status) {
		return ordermodels.Order{}, common.NewError(
			common.ErrCodeBusinessTransition,
			fmt.Sprintf("Không thể chuyển đơn từ trạng thái %q sang %q", order.Status, status),
			common.StatusBadRequest,
			nil,
		)
	}

	set := map[string]interface{}{"orderStatus": status}
	if remarks != "" {
		set["remarks"] = remarks
	}
	if readyTime > 0 {
		set["readyTime"] = readyTime
	}

	// Ghi có điều kiện trên trạng thái vừa đọc (compare-and-set): nếu một
	// request khác đã chuyển trạng thái trước, filter trượt và trả về
	// Conflict thay vì ghi đè một transition không hợp lệ.
	updated, err := s.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID, "orderStatus": order.Status},
		&basesvc.UpdateData{Set: set})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return ordermodels.Order{}, common.ErrConflict
		}
		return ordermodels.Order{}, err
	}
	return updated, nil
}

// FindByCustomer trả về lịch sử đơn của một khách, mới nhất trước.
// Hồ sơ không tồn tại hoặc chưa có đơn nào đều là NotFound.
func (s *OrderService) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]ordermodels.Order, error) {
	if _, err := s.customerService.FindOneById(ctx, customerID); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	orders, err := s.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, common.ErrNotFound
	}
	return orders, nil
}

// FindByVendor trả về hàng đợi thực hiện đơn của một nhà hàng, cũ nhất trước.
// Hàng đợi rỗng không phải lỗi.
func (s *OrderService) FindByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]ordermodels.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	orders, err := s.Find(ctx, bson.M{"vendorId": vendorID}, opts)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []ordermodels.Order{}
	}
	return orders, nil
}
