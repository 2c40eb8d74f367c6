package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LimiterStorage адаптирует Redis под интерфейс fiber.Storage, чтобы
// счётчики rate limiter были общими для всех реплик сервиса.
type LimiterStorage struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewLimiterStorage - создание хранилища лимитера поверх Redis
func NewLimiterStorage(redisConn *Redis, keyPrefix string) *LimiterStorage {
	return &LimiterStorage{
		client:    redisConn.Client(),
		keyPrefix: keyPrefix,
		logger:    redisConn.logger,
	}
}

func (s *LimiterStorage) key(k string) string {
	return s.keyPrefix + ":" + k
}

// Get возвращает значение ключа или (nil, nil), если ключа нет
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Failed to get limiter key", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return val, nil
}

// Set сохраняет значение с TTL; нулевой exp означает ключ без срока
func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	if err := s.client.Set(context.Background(), s.key(key), val, exp).Err(); err != nil {
		s.logger.Error("Failed to set limiter key", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete удаляет ключ
func (s *LimiterStorage) Delete(key string) error {
	if err := s.client.Del(context.Background(), s.key(key)).Err(); err != nil {
		s.logger.Error("Failed to delete limiter key", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Reset удаляет ключи лимитера по префиксу, не трогая чужие данные в Redis
func (s *LimiterStorage) Reset() error {
	ctx := context.Background()
	iter := s.client.Scan(ctx, 0, s.keyPrefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close ничего не закрывает: соединением владеет Redis wrapper
func (s *LimiterStorage) Close() error {
	return nil
}
