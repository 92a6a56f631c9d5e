package repository

import "time"

// StoreObserver receives the duration of one collection operation. A nil
// observer disables instrumentation.
type StoreObserver func(collection, operation string, duration time.Duration)

func (o StoreObserver) since(collection, operation string, start time.Time) {
	if o != nil {
		o(collection, operation, time.Since(start))
	}
}
