package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	// TryLock returns whether the lock was acquired and, when it was, the
	// ownership value required to release it.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
}
