package router

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food_commerce/internal/global"
)

// registerTestCollections đăng ký các handle collection vào registry toàn
// cục. Driver chỉ dial khi có thao tác thật nên test chạy được không cần
// MongoDB.
func registerTestCollections(t *testing.T) {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("tạo client MongoDB: %v", err)
	}
	db := client.Database("food_commerce_test")
	names := []string{
		global.MongoDB_ColNames.Vendors,
		global.MongoDB_ColNames.Foods,
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Orders,
	}
	for _, name := range names {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			t.Fatalf("đăng ký collection %q: %v", name, err)
		}
	}
}

func TestRegister_MountsAdminCrudRoutes(t *testing.T) {
	registerTestCollections(t)

	app := fiber.New()
	v1 := app.Group("/api/v1")
	if err := Register(v1); err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}

	mounted := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		mounted[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/v1/vendor/login",
		"GET /api/v1/vendor/orders",
		"POST /api/v1/admin/vendor",
		"GET /api/v1/admin/vendors",
		"GET /api/v1/admin/vendor/:id",
		"POST /api/v1/admin/vendors/insert-one",
		"GET /api/v1/admin/vendors/find-one",
		"GET /api/v1/admin/vendors/find",
		"GET /api/v1/admin/vendors/find-by-id/:id",
		"GET /api/v1/admin/vendors/find-with-pagination",
		"PUT /api/v1/admin/vendors/update-by-id/:id",
		"DELETE /api/v1/admin/vendors/delete-by-id/:id",
		"GET /api/v1/admin/vendors/count",
		"GET /api/v1/admin/vendors/exists",
	}
	for _, route := range want {
		if !mounted[route] {
			t.Errorf("route %s chưa được mount", route)
		}
	}
}
