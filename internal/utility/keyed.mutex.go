package utility

import "sync"

// KeyedMutex cấp phát mutex theo key, dùng để tuần tự hóa
// các thao tác đồng thời trên cùng một tài nguyên (ví dụ: giỏ hàng của một khách).
// Mutex được tạo lười (lazy) khi key xuất hiện lần đầu và giữ lại cho các lần sau.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedMutex tạo một KeyedMutex mới
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock khóa mutex của key, tạo mới nếu chưa có
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	lock, exists := km.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		km.locks[key] = lock
	}
	km.mu.Unlock()

	lock.Lock()
}

// Unlock mở khóa mutex của key.
// Gọi Unlock cho key chưa từng Lock sẽ panic như sync.Mutex tiêu chuẩn.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	lock, exists := km.locks[key]
	km.mu.Unlock()

	if !exists {
		panic("utility: Unlock cho key chưa được Lock: " + key)
	}
	lock.Unlock()
}
