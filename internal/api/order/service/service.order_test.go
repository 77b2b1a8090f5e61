package ordersvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food_commerce/config"
	basemodels "food_commerce/internal/api/base/models"
	basesvc "food_commerce/internal/api/base/service"
	catalogmodels "food_commerce/internal/api/catalog/models"
	customermodels "food_commerce/internal/api/customer/models"
	ordermodels "food_commerce/internal/api/order/models"
	"food_commerce/internal/common"
	"food_commerce/internal/global"
)

// fakeBase là BaseServiceMongo giả cho test: chỉ cài các hàm test cần,
// các hàm còn lại trả về giá trị zero.
type fakeBase[T any] struct {
	insertOne        func(ctx context.Context, data T) (T, error)
	findOneById      func(ctx context.Context, id primitive.ObjectID) (T, error)
	findOneAndUpdate func(ctx context.Context, filter interface{}, update interface{}) (T, error)
	updateOne        func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error)
	documentExists   func(ctx context.Context, filter interface{}) (bool, error)
}

func (f *fakeBase[T]) InsertOne(ctx context.Context, data T) (T, error) {
	if f.insertOne == nil {
		var zero T
		return zero, nil
	}
	return f.insertOne(ctx, data)
}

func (f *fakeBase[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	if f.findOneById == nil {
		var zero T
		return zero, common.ErrNotFound
	}
	return f.findOneById(ctx, id)
}

func (f *fakeBase[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	if f.findOneAndUpdate == nil {
		var zero T
		return zero, common.ErrNotFound
	}
	return f.findOneAndUpdate(ctx, filter, update)
}

func (f *fakeBase[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (T, error) {
	if f.updateOne == nil {
		var zero T
		return zero, common.ErrNotFound
	}
	return f.updateOne(ctx, filter, update, opts)
}

func (f *fakeBase[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if f.documentExists == nil {
		return false, nil
	}
	return f.documentExists(ctx, filter)
}

func (f *fakeBase[T]) FindOne(context.Context, interface{}, *options.FindOneOptions) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}

func (f *fakeBase[T]) Find(context.Context, interface{}, *options.FindOptions) ([]T, error) {
	return []T{}, nil
}

func (f *fakeBase[T]) DeleteOne(context.Context, interface{}) error { return nil }

func (f *fakeBase[T]) CountDocuments(context.Context, interface{}) (int64, error) { return 0, nil }

func (f *fakeBase[T]) Distinct(context.Context, string, interface{}) ([]interface{}, error) {
	return nil, nil
}

func (f *fakeBase[T]) FindManyByIds(context.Context, []primitive.ObjectID) ([]T, error) {
	return []T{}, nil
}

func (f *fakeBase[T]) FindWithPagination(context.Context, interface{}, int64, int64, *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	return &basemodels.PaginateResult[T]{}, nil
}

func (f *fakeBase[T]) UpdateById(context.Context, primitive.ObjectID, interface{}) (T, error) {
	var zero T
	return zero, common.ErrNotFound
}

func (f *fakeBase[T]) DeleteById(context.Context, primitive.ObjectID) error { return nil }

func (f *fakeBase[T]) Upsert(context.Context, interface{}, interface{}) (T, error) {
	var zero T
	return zero, nil
}

// fakeCatalog là catalogLookup giả, ghi nhận việc có bị gọi hay không.
type fakeCatalog struct {
	foods  []catalogmodels.Food
	err    error
	called bool
}

func (f *fakeCatalog) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]catalogmodels.Food, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.foods, nil
}

// newTestOrderService lắp OrderService từ các collaborator giả; transaction
// chạy thẳng fn, không cần MongoDB.
func newTestOrderService(orders *fakeBase[ordermodels.Order], customers *fakeBase[customermodels.Customer], catalog *fakeCatalog) *OrderService {
	return &OrderService{
		BaseServiceMongo: orders,
		customerService:  customers,
		foodService:      catalog,
		runTxn: func(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
			return fn(nil)
		},
	}
}

func withTestConfig(t *testing.T) {
	t.Helper()
	prev := global.ServerConfig
	global.ServerConfig = &config.Configuration{OrderCodeMaxRetry: 3}
	t.Cleanup(func() { global.ServerConfig = prev })
}

func TestOrderService_Create_MissingProfile(t *testing.T) {
	catalog := &fakeCatalog{}
	s := newTestOrderService(&fakeBase[ordermodels.Order]{}, &fakeBase[customermodels.Customer]{}, catalog)

	_, err := s.Create(context.Background(), primitive.NewObjectID(), []OrderLine{{FoodID: primitive.NewObjectID(), Unit: 1}})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Create với hồ sơ không tồn tại = %v, muốn ErrNotFound", err)
	}
	if catalog.called {
		t.Error("không được tra cứu catalog khi hồ sơ khách không tồn tại")
	}
}

func TestOrderService_Create_EmptyLines(t *testing.T) {
	customerID := primitive.NewObjectID()
	customers := &fakeBase[customermodels.Customer]{
		findOneById: func(ctx context.Context, id primitive.ObjectID) (customermodels.Customer, error) {
			return customermodels.Customer{ID: customerID}, nil
		},
	}
	inserted := false
	orders := &fakeBase[ordermodels.Order]{
		insertOne: func(ctx context.Context, data ordermodels.Order) (ordermodels.Order, error) {
			inserted = true
			return data, nil
		},
	}
	catalog := &fakeCatalog{}
	s := newTestOrderService(orders, customers, catalog)

	_, err := s.Create(context.Background(), customerID, nil)
	if !errors.Is(err, common.ErrEmptyCart) {
		t.Fatalf("Create với danh sách dòng rỗng = %v, muốn ErrEmptyCart", err)
	}
	if catalog.called {
		t.Error("không được tra cứu catalog khi danh sách dòng rỗng")
	}
	if inserted {
		t.Error("không được ghi đơn khi danh sách dòng rỗng")
	}
}

func TestOrderService_Create_AppendsHistoryOnce(t *testing.T) {
	withTestConfig(t)

	customerID := primitive.NewObjectID()
	vendorID := primitive.NewObjectID()
	foodID := primitive.NewObjectID()
	food := catalogmodels.Food{ID: foodID, VendorID: vendorID, Name: "Phở bò", Price: 50000}

	customers := &fakeBase[customermodels.Customer]{
		findOneById: func(ctx context.Context, id primitive.ObjectID) (customermodels.Customer, error) {
			return customermodels.Customer{
				ID:   customerID,
				Cart: []customermodels.CartItem{{FoodID: foodID, Food: food, Unit: 2}},
			}, nil
		},
	}

	var profileUpdates []interface{}
	var profileFilter interface{}
	customers.updateOne = func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (customermodels.Customer, error) {
		profileFilter = filter
		profileUpdates = append(profileUpdates, update)
		return customermodels.Customer{ID: customerID}, nil
	}

	var insertedOrders []ordermodels.Order
	orders := &fakeBase[ordermodels.Order]{
		insertOne: func(ctx context.Context, data ordermodels.Order) (ordermodels.Order, error) {
			insertedOrders = append(insertedOrders, data)
			return data, nil
		},
	}
	catalog := &fakeCatalog{foods: []catalogmodels.Food{food}}
	s := newTestOrderService(orders, customers, catalog)

	result, err := s.Create(context.Background(), customerID, []OrderLine{{FoodID: foodID, Unit: 2}})
	if err != nil {
		t.Fatalf("Create lỗi: %v", err)
	}
	if result.Order.TotalAmount != 100000 {
		t.Errorf("TotalAmount = %v, muốn 100000", result.Order.TotalAmount)
	}
	if len(insertedOrders) != 1 {
		t.Fatalf("ghi %d đơn, muốn đúng 1", len(insertedOrders))
	}

	// Lịch sử đơn của khách được append đúng một lần, đúng id đơn vừa ghi,
	// và giỏ được làm rỗng trong cùng lần cập nhật
	if len(profileUpdates) != 1 {
		t.Fatalf("cập nhật hồ sơ khách %d lần, muốn đúng 1", len(profileUpdates))
	}
	filter, ok := profileFilter.(bson.M)
	if !ok || filter["_id"] != customerID {
		t.Errorf("filter cập nhật hồ sơ = %v, muốn _id = %v", profileFilter, customerID)
	}
	update, ok := profileUpdates[0].(*basesvc.UpdateData)
	if !ok {
		t.Fatalf("update hồ sơ có kiểu %T, muốn *basesvc.UpdateData", profileUpdates[0])
	}
	pushed, ok := update.Push["orders"].(primitive.ObjectID)
	if !ok || pushed != insertedOrders[0].ID {
		t.Errorf("push lịch sử = %v, muốn id đơn vừa ghi %v", update.Push["orders"], insertedOrders[0].ID)
	}
	cart, ok := update.Set["cart"].([]customermodels.CartItem)
	if !ok || len(cart) != 0 {
		t.Errorf("giỏ sau khi tạo đơn = %v, muốn rỗng", update.Set["cart"])
	}
}

func TestOrderService_UpdateStatus_ConditionalWrite(t *testing.T) {
	orderID := primitive.NewObjectID()
	var gotFilter interface{}
	orders := &fakeBase[ordermodels.Order]{
		findOneById: func(ctx context.Context, id primitive.ObjectID) (ordermodels.Order, error) {
			return ordermodels.Order{ID: orderID, Status: StatusAccepted}, nil
		},
		findOneAndUpdate: func(ctx context.Context, filter interface{}, update interface{}) (ordermodels.Order, error) {
			gotFilter = filter
			return ordermodels.Order{ID: orderID, Status: StatusPreparing}, nil
		},
	}
	s := newTestOrderService(orders, &fakeBase[customermodels.Customer]{}, &fakeCatalog{})

	updated, err := s.UpdateStatus(context.Background(), orderID, StatusPreparing, "", 0)
	if err != nil {
		t.Fatalf("UpdateStatus lỗi: %v", err)
	}
	if updated.Status != StatusPreparing {
		t.Errorf("trạng thái sau cập nhật = %q, muốn %q", updated.Status, StatusPreparing)
	}

	// Ghi phải có điều kiện trên trạng thái đã đọc, không chỉ trên _id
	filter, ok := gotFilter.(bson.M)
	if !ok {
		t.Fatalf("filter có kiểu %T, muốn bson.M", gotFilter)
	}
	if filter["_id"] != orderID {
		t.Errorf("filter _id = %v, muốn %v", filter["_id"], orderID)
	}
	if filter["orderStatus"] != StatusAccepted {
		t.Errorf("filter orderStatus = %v, muốn %q", filter["orderStatus"], StatusAccepted)
	}
}

func TestOrderService_UpdateStatus_ConcurrentTransitionConflict(t *testing.T) {
	// Hai request cùng đọc trạng thái accepted: request kia chuyển sang
	// cancelled trước, request này (accepted -> preparing) trượt filter
	// điều kiện và phải nhận Conflict thay vì ghi đè cancelled -> preparing.
	orderID := primitive.NewObjectID()
	orders := &fakeBase[ordermodels.Order]{
		findOneById: func(ctx context.Context, id primitive.ObjectID) (ordermodels.Order, error) {
			return ordermodels.Order{ID: orderID, Status: StatusAccepted}, nil
		},
		findOneAndUpdate: func(ctx context.Context, filter interface{}, update interface{}) (ordermodels.Order, error) {
			return ordermodels.Order{}, common.ErrNotFound
		},
	}
	s := newTestOrderService(orders, &fakeBase[customermodels.Customer]{}, &fakeCatalog{})

	_, err := s.UpdateStatus(context.Background(), orderID, StatusPreparing, "", 0)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("UpdateStatus khi thua ghi đồng thời = %v, muốn ErrConflict", err)
	}
}

func TestOrderService_UpdateStatus_IllegalTransitionNoWrite(t *testing.T) {
	orderID := primitive.NewObjectID()
	wrote := false
	orders := &fakeBase[ordermodels.Order]{
		findOneById: func(ctx context.Context, id primitive.ObjectID) (ordermodels.Order, error) {
			return ordermodels.Order{ID: orderID, Status: StatusDelivered}, nil
		},
		findOneAndUpdate: func(ctx context.Context, filter interface{}, update interface{}) (ordermodels.Order, error) {
			wrote = true
			return ordermodels.Order{}, nil
		},
	}
	s := newTestOrderService(orders, &fakeBase[customermodels.Customer]{}, &fakeCatalog{})

	_, err := s.UpdateStatus(context.Background(), orderID, StatusWaiting, "", 0)
	var customErr *common.Error
	if !errors.As(err, &customErr) || customErr.Code.Code != common.ErrCodeBusinessTransition.Code {
		t.Fatalf("UpdateStatus từ trạng thái kết thúc = %v, muốn lỗi transition", err)
	}
	if wrote {
		t.Error("không được ghi database khi transition không hợp lệ")
	}
}
