package initializer

import (
	"quickdraw-service/config"
	"quickdraw-service/infra/redis"
)

func InitRoomRedis(appConfig config.Config) (*redis.RedisManager, error) {
	return redis.NewRedisManager(appConfig.Redis.Addr(), appConfig.Redis.Password, appConfig.Redis.DB)
}
