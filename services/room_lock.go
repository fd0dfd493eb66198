package services

import (
	"sync"
	"time"

	"hillbook/errors"
)

// RoomLocker giữ một khóa riêng cho từng phòng. Mọi lần nhận booking trên
// cùng một phòng phải đi qua khóa này để chuỗi đọc-kiểm tra-ghi không bị
// xen kẽ; các phòng khác nhau không chặn nhau.
type RoomLocker struct {
	mu    sync.Mutex
	locks map[uint]chan struct{}
}

// NewRoomLocker tạo RoomLocker mới
func NewRoomLocker() *RoomLocker {
	return &RoomLocker{
		locks: make(map[uint]chan struct{}),
	}
}

func (l *RoomLocker) lockChan(roomID uint) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[roomID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[roomID] = ch
	}
	return ch
}

// Acquire lấy khóa của phòng, chờ tối đa timeout.
// Hết hạn chờ thì trả lỗi ErrCodeLockTimeout thay vì chặn vô hạn.
func (l *RoomLocker) Acquire(roomID uint, timeout time.Duration) error {
	ch := l.lockChan(roomID)

	select {
	case ch <- struct{}{}:
		return nil
	case <-time.After(timeout):
		return errors.NewAppError(errors.ErrCodeLockTimeout,
			"Phòng đang có lượt đặt khác xử lý, vui lòng thử lại", nil)
	}
}

// Release trả khóa của phòng. Gọi trên mọi đường thoát, kể cả khi lỗi.
func (l *RoomLocker) Release(roomID uint) {
	ch := l.lockChan(roomID)

	select {
	case <-ch:
	default:
		// release khi chưa acquire là bug ở caller, bỏ qua để không panic
	}
}
