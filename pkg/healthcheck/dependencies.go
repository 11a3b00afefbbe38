package healthcheck

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/miambidi/mealplan/internal/ports/outbound"
)

// DatabaseChecker verifies database connectivity through the GORM handle
func DatabaseChecker(db *gorm.DB) Checker {
	return CheckFunc(func(ctx context.Context) Check {
		started := time.Now()
		check := Check{
			Name:        "database",
			Status:      StatusHealthy,
			LastChecked: started,
		}

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		}

		check.Duration = time.Since(started)
		return check
	})
}

// CacheChecker verifies the cache backend with a write/read round trip.
// Cache failure degrades the service rather than taking it down.
func CacheChecker(cache outbound.CacheRepository) Checker {
	return CheckFunc(func(ctx context.Context) Check {
		started := time.Now()
		check := Check{
			Name:        "cache",
			Status:      StatusHealthy,
			LastChecked: started,
		}

		key := "healthcheck:probe"
		if err := cache.Set(ctx, key, []byte("ok"), 10*time.Second); err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
		} else if _, err := cache.Get(ctx, key); err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
		}

		check.Duration = time.Since(started)
		return check
	})
}
