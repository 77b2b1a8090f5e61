// Package ordersvc - các hàm thuần phục vụ tạo đơn: đối soát giỏ với
// catalog và sinh mã đơn ngắn.
// File: service.order.builder.go - giữ tên cấu trúc cũ.
package ordersvc

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "food_commerce/internal/api/catalog/models"
	ordermodels "food_commerce/internal/api/order/models"
)

// Khoảng sinh mã đơn ngắn: [1000, 89999).
const (
	orderCodeMin = 1000
	orderCodeMax = 89999
)

// OrderLine là một dòng yêu cầu đặt hàng từ client: id món + số lượng.
type OrderLine struct {
	FoodID primitive.ObjectID // ID món ăn
	Unit   int                // Số lượng yêu cầu
}

// ReconcileCart đối soát các dòng yêu cầu với kết quả tra cứu catalog.
// Mỗi dòng khớp được với một món sẽ thành OrderItem với subtotal = price*unit;
// dòng trỏ tới món không còn tồn tại bị loại và id của nó trả về trong dropped.
// Dòng trùng FoodID: dòng sau ghi đè dòng trước (client gửi trạng thái cuối).
// Hàm thuần, không đụng tới database.
func ReconcileCart(foods []catalogmodels.Food, lines []OrderLine) (items []ordermodels.OrderItem, netAmount float64, dropped []primitive.ObjectID) {
	foodById := make(map[primitive.ObjectID]catalogmodels.Food, len(foods))
	for _, f := range foods {
		foodById[f.ID] = f
	}

	// Khử trùng lặp theo FoodID, giữ thứ tự xuất hiện đầu tiên
	seen := make(map[primitive.ObjectID]int, len(lines))
	deduped := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		if idx, ok := seen[line.FoodID]; ok {
			deduped[idx] = line
			continue
		}
		seen[line.FoodID] = len(deduped)
		deduped = append(deduped, line)
	}

	items = []ordermodels.OrderItem{}
	dropped = []primitive.ObjectID{}
	for _, line := range deduped {
		food, ok := foodById[line.FoodID]
		if !ok {
			dropped = append(dropped, line.FoodID)
			continue
		}
		if line.Unit <= 0 {
			continue
		}
		subtotal := food.Price * float64(line.Unit)
		items = append(items, ordermodels.OrderItem{
			Food:     food,
			Unit:     line.Unit,
			Subtotal: subtotal,
		})
		netAmount += subtotal
	}
	return items, netAmount, dropped
}

// GenerateOrderCode sinh mã đơn ngắn ngẫu nhiên trong [1000, 89999).
// Mã KHÔNG đảm bảo duy nhất: caller phải kiểm tra trùng với
// DocumentExists và thử lại trong giới hạn cấu hình.
func GenerateOrderCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(orderCodeMax-orderCodeMin))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+orderCodeMin, 10), nil
}
