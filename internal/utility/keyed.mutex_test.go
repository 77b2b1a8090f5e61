package utility

import (
	"sync"
	"testing"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("customer-1")
			defer km.Unlock("customer-1")
			counter++
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, muốn 100 (các goroutine cùng key phải tuần tự)", counter)
	}
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("a")
	// Key khác không được block
	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()
	<-done
	km.Unlock("a")
}

func TestKeyedMutex_UnlockUnknownKeyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Unlock key chưa Lock phải panic")
		}
	}()
	NewKeyedMutex().Unlock("chua-lock")
}
