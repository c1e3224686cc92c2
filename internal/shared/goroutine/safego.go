// Package goroutine launches background goroutines that log panics instead of crashing.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"fixit/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic is logged with its stack and, when onPanic is
// given, reported to it so the caller can shut down.
func SafeGo(log logger.Interface, name string, fn func(), onPanic ...func(recovered any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				for _, cb := range onPanic {
					cb(r)
				}
			}
		}()
		fn()
	}()
}
