package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// ZIncrBy 有序集合成员加分，成员不存在时按 0 起算
func ZIncrBy(ctx context.Context, key string, increment float64, member string) error {
	return Rdb.ZIncrBy(ctx, key, increment, member).Err()
}

// ZRevRange 获取有序集合中指定区间内的成员，分数从高到低排序
func ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	value, err := Rdb.ZRevRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ZRemRangeByRank 移除有序集合中给定的排名区间的所有成员
func ZRemRangeByRank(ctx context.Context, key string, start, stop int64) error {
	return Rdb.ZRemRangeByRank(ctx, key, start, stop).Err()
}

// Rename 原子替换：榜单在暂存键算好后一次性切换
func Rename(ctx context.Context, oldKey string, newKey string) error {
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}
