package locker

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		return false, "", err
	}
	if !acquired {
		s.Log.Debug("lock not acquired",
			zap.String("key", key),
		)
		return false, "", nil
	}
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	if storedVal == "" {
		// Lock already expired; nothing to release.
		return nil
	}

	// Values are stored JSON-encoded, so the stored form is quoted.
	expectedValue := fmt.Sprintf("%q", lockValue)
	if storedVal != expectedValue {
		return exceptions.ErrRedisDelete(fmt.Errorf("lock not owned by this client"))
	}

	return s.redisRepo.Delete(ctx, key)
}
