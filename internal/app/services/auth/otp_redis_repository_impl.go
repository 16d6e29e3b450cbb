package auth

import (
	"context"
	"time"

	"dermref-service/internal/app/contracts"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type OtpRedisRepository struct {
	RedisClient *redis.Client
}

func NewOtpRedisRepository(redisClient *redis.Client) contracts.OtpRepository {
	return &OtpRedisRepository{
		RedisClient: redisClient,
	}
}

// SaveOtp overwrites any code previously issued for the email, so only the
// latest code is ever valid.
func (r *OtpRedisRepository) SaveOtp(ctx context.Context, email, code string, exp time.Duration) error {
	err := r.RedisClient.Set(ctx, constvars.RedisOtpKeyPrefix+email, code, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *OtpRedisRepository) GetOtp(ctx context.Context, email string) (string, error) {
	code, err := r.RedisClient.Get(ctx, constvars.RedisOtpKeyPrefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", exceptions.ErrRedisGet(err)
	}
	return code, nil
}

func (r *OtpRedisRepository) DeleteOtp(ctx context.Context, email string) error {
	err := r.RedisClient.Del(ctx, constvars.RedisOtpKeyPrefix+email).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
