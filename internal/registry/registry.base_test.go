package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("orders", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả về isNew = true")
	}

	got, exists := r.Get("orders")
	if !exists || got != 1 {
		t.Errorf("Get = (%v, %v), muốn (1, true)", got, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("key chưa đăng ký phải trả về exists = false")
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("foods", "a")

	isNew, err := r.Register("foods", "b")
	if err != nil {
		t.Fatalf("Register trùng key lỗi: %v", err)
	}
	if isNew {
		t.Error("đăng ký trùng key phải trả về isNew = false")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()

	v, err := r.GetOrCreate("customers", func() (string, error) { return "created", nil })
	if err != nil || v != "created" {
		t.Fatalf("GetOrCreate = (%q, %v), muốn (created, nil)", v, err)
	}

	// Lần hai không gọi creator nữa
	v, err = r.GetOrCreate("customers", func() (string, error) { return "", errors.New("không được gọi") })
	if err != nil || v != "created" {
		t.Errorf("GetOrCreate lần hai = (%q, %v), muốn giá trị đã có", v, err)
	}
}

func TestRegistry_ClearAndKeys(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("vendors", 1)
	r.Register("orders", 2)

	if got := len(r.Keys()); got != 2 {
		t.Fatalf("Keys trả về %d phần tử, muốn 2", got)
	}

	cleaned := false
	deleted, err := r.Clear("vendors", func(int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted {
		t.Fatalf("Clear = (%v, %v), muốn (true, nil)", deleted, err)
	}
	if !cleaned {
		t.Error("cleanup phải được gọi trước khi xóa")
	}

	// Clear key không tồn tại không phải là lỗi
	deleted, err = r.Clear("missing", nil)
	if err != nil || deleted {
		t.Errorf("Clear key không tồn tại = (%v, %v), muốn (false, nil)", deleted, err)
	}

	// Cleanup lỗi thì giữ nguyên item
	if _, err := r.Clear("orders", func(int) error { return errors.New("đang bận") }); err == nil {
		t.Error("Clear phải trả lỗi khi cleanup thất bại")
	}
	if _, exists := r.Get("orders"); !exists {
		t.Error("item phải còn trong registry khi cleanup thất bại")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()

	if r.Count() != 1 {
		t.Errorf("Count = %d, muốn 1", r.Count())
	}
}
