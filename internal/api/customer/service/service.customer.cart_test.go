// Package customersvc - test hàm thuần áp thao tác lên giỏ hàng.
package customersvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "food_commerce/internal/api/catalog/models"
	customermodels "food_commerce/internal/api/customer/models"
)

func cartItem(unit int) customermodels.CartItem {
	id := primitive.NewObjectID()
	return customermodels.CartItem{
		FoodID: id,
		Food:   catalogmodels.Food{ID: id, Name: "món test", Price: 10},
		Unit:   unit,
	}
}

func TestApplyCartItem_AppendNewItem(t *testing.T) {
	existing := cartItem(1)
	incoming := cartItem(2)

	cart := ApplyCartItem([]customermodels.CartItem{existing}, incoming)
	if len(cart) != 2 {
		t.Fatalf("giỏ phải có 2 dòng, có %d", len(cart))
	}
	if cart[1].FoodID != incoming.FoodID || cart[1].Unit != 2 {
		t.Error("dòng mới phải được append vào cuối giỏ")
	}
}

func TestApplyCartItem_ReplaceExisting(t *testing.T) {
	existing := cartItem(1)
	updated := existing
	updated.Unit = 5
	updated.Food.Price = 12 // snapshot mới

	cart := ApplyCartItem([]customermodels.CartItem{existing}, updated)
	if len(cart) != 1 {
		t.Fatalf("upsert cùng FoodID phải giữ giỏ 1 dòng, có %d", len(cart))
	}
	if cart[0].Unit != 5 {
		t.Errorf("unit = %d, muốn 5", cart[0].Unit)
	}
	if cart[0].Food.Price != 12 {
		t.Error("snapshot món phải được thay bằng bản mới")
	}
}

func TestApplyCartItem_ZeroUnitRemoves(t *testing.T) {
	keep := cartItem(1)
	remove := cartItem(3)

	removal := customermodels.CartItem{FoodID: remove.FoodID, Unit: 0}
	cart := ApplyCartItem([]customermodels.CartItem{keep, remove}, removal)
	if len(cart) != 1 {
		t.Fatalf("unit=0 phải xóa dòng, giỏ còn %d dòng", len(cart))
	}
	if cart[0].FoodID != keep.FoodID {
		t.Error("xóa nhầm dòng: dòng còn lại phải là dòng không bị đụng tới")
	}
}

func TestApplyCartItem_NegativeUnitRemoves(t *testing.T) {
	item := cartItem(2)
	cart := ApplyCartItem([]customermodels.CartItem{item}, customermodels.CartItem{FoodID: item.FoodID, Unit: -1})
	if len(cart) != 0 {
		t.Errorf("unit âm phải xóa dòng, giỏ còn %d dòng", len(cart))
	}
}

func TestApplyCartItem_RemoveAbsentIsNoop(t *testing.T) {
	item := cartItem(2)
	cart := ApplyCartItem([]customermodels.CartItem{item}, customermodels.CartItem{FoodID: primitive.NewObjectID(), Unit: 0})
	if len(cart) != 1 {
		t.Errorf("xóa món không có trong giỏ phải là no-op, giỏ còn %d dòng", len(cart))
	}
}

func TestApplyCartItem_EmptyCart(t *testing.T) {
	incoming := cartItem(1)
	cart := ApplyCartItem(nil, incoming)
	if len(cart) != 1 {
		t.Fatalf("thêm vào giỏ rỗng phải ra 1 dòng, có %d", len(cart))
	}

	cart = ApplyCartItem(nil, customermodels.CartItem{FoodID: primitive.NewObjectID(), Unit: 0})
	if len(cart) != 0 {
		t.Errorf("xóa trên giỏ rỗng phải ra giỏ rỗng, có %d dòng", len(cart))
	}
}
