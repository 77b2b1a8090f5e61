// Package ordersvc - test đối soát giỏ hàng và sinh mã đơn.
package ordersvc

import (
	"strconv"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "food_commerce/internal/api/catalog/models"
)

func makeFood(price float64) catalogmodels.Food {
	return catalogmodels.Food{
		ID:       primitive.NewObjectID(),
		VendorID: primitive.NewObjectID(),
		Name:     "test food",
		Price:    price,
	}
}

func TestReconcileCart_TotalAndSnapshot(t *testing.T) {
	foodA := makeFood(10.5)
	foodB := makeFood(2.0)
	foods := []catalogmodels.Food{foodA, foodB}
	lines := []OrderLine{
		{FoodID: foodA.ID, Unit: 2},
		{FoodID: foodB.ID, Unit: 2},
	}

	items, net, dropped := ReconcileCart(foods, lines)
	if len(items) != 2 {
		t.Fatalf("số dòng đơn = %d, muốn 2", len(items))
	}
	if net != 25.0 {
		t.Errorf("netAmount = %v, muốn 25.0", net)
	}
	if len(dropped) != 0 {
		t.Errorf("không có món stale nhưng dropped = %v", dropped)
	}
	if items[0].Subtotal != 21.0 {
		t.Errorf("subtotal dòng đầu = %v, muốn 21.0", items[0].Subtotal)
	}
	if items[0].Food.ID != foodA.ID {
		t.Error("dòng đơn phải giữ snapshot món đúng theo id")
	}
}

func TestReconcileCart_DropsStaleIds(t *testing.T) {
	food := makeFood(5.0)
	stale := primitive.NewObjectID()
	lines := []OrderLine{
		{FoodID: food.ID, Unit: 1},
		{FoodID: stale, Unit: 3},
	}

	items, net, dropped := ReconcileCart([]catalogmodels.Food{food}, lines)
	if len(items) != 1 {
		t.Fatalf("số dòng đơn = %d, muốn 1", len(items))
	}
	if net != 5.0 {
		t.Errorf("netAmount = %v, muốn 5.0", net)
	}
	if len(dropped) != 1 || dropped[0] != stale {
		t.Errorf("dropped = %v, muốn [%v]", dropped, stale)
	}
}

func TestReconcileCart_AllStale(t *testing.T) {
	lines := []OrderLine{
		{FoodID: primitive.NewObjectID(), Unit: 1},
		{FoodID: primitive.NewObjectID(), Unit: 2},
	}

	items, net, dropped := ReconcileCart(nil, lines)
	if len(items) != 0 {
		t.Errorf("toàn món stale nhưng vẫn có %d dòng đơn", len(items))
	}
	if net != 0 {
		t.Errorf("netAmount = %v, muốn 0", net)
	}
	if len(dropped) != 2 {
		t.Errorf("dropped = %v, muốn đủ 2 id", dropped)
	}
}

func TestReconcileCart_DuplicateLineLastWins(t *testing.T) {
	food := makeFood(3.0)
	lines := []OrderLine{
		{FoodID: food.ID, Unit: 1},
		{FoodID: food.ID, Unit: 4},
	}

	items, net, _ := ReconcileCart([]catalogmodels.Food{food}, lines)
	if len(items) != 1 {
		t.Fatalf("dòng trùng FoodID phải gộp còn 1, có %d", len(items))
	}
	if items[0].Unit != 4 {
		t.Errorf("unit = %d, muốn dòng sau ghi đè (4)", items[0].Unit)
	}
	if net != 12.0 {
		t.Errorf("netAmount = %v, muốn 12.0", net)
	}
}

func TestReconcileCart_ZeroUnitLineSkipped(t *testing.T) {
	food := makeFood(3.0)
	items, net, dropped := ReconcileCart([]catalogmodels.Food{food}, []OrderLine{{FoodID: food.ID, Unit: 0}})
	if len(items) != 0 || net != 0 {
		t.Errorf("dòng unit=0 phải bị bỏ qua, items=%v net=%v", items, net)
	}
	if len(dropped) != 0 {
		t.Errorf("dòng unit=0 của món còn tồn tại không tính là dropped, dropped=%v", dropped)
	}
}

func TestGenerateOrderCode_RangeAndFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateOrderCode()
		if err != nil {
			t.Fatalf("GenerateOrderCode lỗi: %v", err)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("mã đơn %q không phải chuỗi số", code)
		}
		if n < orderCodeMin || n >= orderCodeMax {
			t.Fatalf("mã đơn %d ngoài khoảng [%d, %d)", n, orderCodeMin, orderCodeMax)
		}
	}
}
