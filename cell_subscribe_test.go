package cell

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	t.Run("receives current value then each write in order", func(t *testing.T) {
		log := []int{}

		count := NewSignal(0)
		count.Subscribe(func(c int) {
			log = append(log, c)
		})

		count.Write(1)
		count.Write(2)
		count.Update(func(c int) int { return c + 10 })

		assert.Equal(t, []int{0, 1, 2, 12}, log)
	})

	t.Run("subscriber observes the new value when reading", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("got %d read %d", c, count.Read()))
		})

		count.Write(5)

		assert.Equal(t, []string{
			"got 0 read 0",
			"got 5 read 5",
		}, log)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		log := []int{}

		count := NewSignal(0)
		unsubscribe := count.Subscribe(func(c int) {
			log = append(log, c)
		})

		count.Write(1)
		unsubscribe()
		count.Write(2)

		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("double unsubscribe is a no-op", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)
		unsubscribeA := count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("a %d", c))
		})
		count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("b %d", c))
		})

		assert.NotPanics(t, func() {
			unsubscribeA()
			unsubscribeA()
		})

		count.Write(1)

		assert.Equal(t, []string{
			"a 0",
			"b 0",
			"b 1",
		}, log)
	})

	t.Run("same callback subscribed twice is notified twice", func(t *testing.T) {
		calls := 0
		fn := func(int) { calls++ }

		count := NewSignal(0)
		unsubscribe := count.Subscribe(fn)
		count.Subscribe(fn)

		unsubscribe()
		count.Write(1)

		// 2 initial calls, then only the remaining subscription
		assert.Equal(t, 3, calls)
	})

	t.Run("unsubscribing a later subscriber mid-notification skips it", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		var unsubscribeB func()
		count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("a %d", c))
			if c == 1 {
				unsubscribeB()
			}
		})
		unsubscribeB = count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("b %d", c))
		})
		count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("c %d", c))
		})

		count.Write(1)

		assert.Equal(t, []string{
			"a 0",
			"b 0",
			"c 0",
			"a 1",
			"c 1",
		}, log)
	})

	t.Run("unsubscribing itself mid-notification", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		var unsubscribe func()
		unsubscribe = count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("once %d", c))
			if c > 0 {
				unsubscribe()
			}
		})
		count.Subscribe(func(c int) {
			log = append(log, fmt.Sprintf("always %d", c))
		})

		count.Write(1)
		count.Write(2)

		assert.Equal(t, []string{
			"once 0",
			"always 0",
			"once 1",
			"always 1",
			"always 2",
		}, log)
	})

	t.Run("subscribing mid-notification waits for the next write", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		added := false
		count.Subscribe(func(c int) {
			if c == 1 && !added {
				added = true
				count.Subscribe(func(c int) {
					log = append(log, fmt.Sprintf("late %d", c))
				})
			}
		})

		count.Write(1)
		count.Write(2)

		assert.Equal(t, []string{
			"late 1", // initial call made by Subscribe
			"late 2",
		}, log)
	})

	t.Run("subscriber writing to another signal", func(t *testing.T) {
		log := []int{}

		count := NewSignal(0)
		double := NewSignal(0)

		count.Subscribe(func(c int) {
			double.Write(c * 2)
		})
		double.Subscribe(func(d int) {
			log = append(log, d)
		})

		count.Write(10)

		assert.Equal(t, []int{0, 20}, log)
	})

	t.Run("OnChange skips the initial call", func(t *testing.T) {
		calls := 0

		count := NewSignal(0)
		unsubscribe := count.OnChange(func() { calls++ })
		assert.Equal(t, 0, calls)

		count.Write(1)
		assert.Equal(t, 1, calls)

		unsubscribe()
		unsubscribe()
		count.Write(2)
		assert.Equal(t, 1, calls)
	})
}

func TestOnPanic(t *testing.T) {
	t.Run("catches subscriber panics", func(t *testing.T) {
		log := []string{}

		errSignal := NewSignal[error](nil)
		errSignal.Subscribe(func(err error) {
			if err != nil {
				panic(err)
			}
		}, OnPanic(func(r any) {
			log = append(log, fmt.Sprintf("caught %v", r))
		}))
		errSignal.Subscribe(func(err error) {
			log = append(log, fmt.Sprintf("next %v", err))
		})

		require.NotPanics(t, func() {
			errSignal.Write(errors.New("oops"))
		})

		assert.Equal(t, []string{
			"next <nil>",
			"caught oops",
			"next oops",
		}, log)
	})

	t.Run("propagates without a handler", func(t *testing.T) {
		count := NewSignal(0)
		count.Subscribe(func(c int) {
			if c > 0 {
				panic("boom")
			}
		})

		assert.PanicsWithValue(t, "boom", func() {
			count.Write(1)
		})

		// the signal keeps working after the panic unwound
		count.Write(0)
		assert.Equal(t, 0, count.Read())
	})
}
