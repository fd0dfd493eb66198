package services_test

import (
	"sync"
	"testing"
	"time"

	"hillbook/errors"
	"hillbook/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLockerMutualExclusion(t *testing.T) {
	locker := services.NewRoomLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, locker.Acquire(1, time.Second))
			defer locker.Release(1)
			// đọc-sửa-ghi không atomic, chỉ đúng khi khóa hoạt động
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestRoomLockerTimeout(t *testing.T) {
	locker := services.NewRoomLocker()

	require.NoError(t, locker.Acquire(1, time.Second))

	start := time.Now()
	err := locker.Acquire(1, 50*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeLockTimeout))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	locker.Release(1)

	// sau khi trả khóa thì acquire lại được ngay
	require.NoError(t, locker.Acquire(1, 50*time.Millisecond))
	locker.Release(1)
}

func TestRoomLockerIndependentRooms(t *testing.T) {
	locker := services.NewRoomLocker()

	require.NoError(t, locker.Acquire(1, time.Second))
	defer locker.Release(1)

	// phòng khác không bị chặn bởi khóa của phòng 1
	require.NoError(t, locker.Acquire(2, 50*time.Millisecond))
	locker.Release(2)
}

func TestRoomLockerReleaseWithoutAcquire(t *testing.T) {
	locker := services.NewRoomLocker()

	// release thừa không được panic và không cấp thêm slot
	locker.Release(1)
	require.NoError(t, locker.Acquire(1, time.Second))
	err := locker.Acquire(1, 50*time.Millisecond)
	assert.Error(t, err)
	locker.Release(1)
}
