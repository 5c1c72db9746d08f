package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/niktin06sash/MicroserviceProject/PhotoLike_service/internal/configs"
	"github.com/redis/go-redis/v9"
)

type CacheObject struct {
	connect *redis.Client
}

func NewRedisConnection(cfg configs.RedisConfig) (*CacheObject, error) {
	cacheObject := &CacheObject{}
	cacheObject.Open(cfg.Host, cfg.Port, cfg.Password, cfg.DB)
	err := cacheObject.Ping()
	if err != nil {
		log.Printf("[DEBUG] [PhotoLike-Service] Redis-Client-Ping error: %v", err)
		cacheObject.Close()
		return nil, err
	}
	log.Println("[DEBUG] [PhotoLike-Service] Successful connect to Redis-Client")
	return cacheObject, nil
}

// NewCacheObject wraps an existing client.
func NewCacheObject(client *redis.Client) *CacheObject {
	return &CacheObject{connect: client}
}
func (c *CacheObject) Open(host string, port int, password string, db int) {
	c.connect = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})
}
func (c *CacheObject) Ping() error {
	_, err := c.connect.Ping(context.Background()).Result()
	return err
}
func (c *CacheObject) Close() {
	c.connect.Close()
	log.Println("[DEBUG] [PhotoLike-Service] Successful close Redis-Client")
}
