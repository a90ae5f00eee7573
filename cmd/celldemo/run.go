package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/AnatoleLucet/cell"
)

var errNoWrites = errors.New("writes must be positive")

func run(ctx context.Context, out io.Writer, cfg Config) error {
	if cfg.Writes <= 0 {
		return fmt.Errorf("%w: got %d", errNoWrites, cfg.Writes)
	}

	// debounced lines are printed from a timer goroutine
	var mu sync.Mutex
	printf := func(format string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	count := cell.NewSignal(0)
	double := cell.NewComputed(func() int { return count.Read() * 2 }, count)

	unsubscribe := double.Subscribe(func(d int) {
		printf("double %d\n", d)
	})
	defer unsubscribe()

	last := cfg.Writes * 2
	settled := make(chan struct{})
	var once sync.Once

	unsubscribeDebounced := double.Subscribe(func(d int) {
		printf("debounced %d\n", d)
		if d == last {
			once.Do(func() { close(settled) })
		}
	}, cell.WithDebounce(cfg.Debounce))
	defer unsubscribeDebounced()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for range cfg.Writes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			count.Update(func(c int) int { return c + 1 })
		}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-settled:
		return nil
	}
}
