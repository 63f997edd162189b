package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn redis.Conn) (string, error) {
	return redis.String(conn.Do("GET", key))
}

func Set(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("SET", key, value)
	return err
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

func RPUSH(key string, value interface{}, conn redis.Conn) error {
	_, err := conn.Do("RPUSH", key, value)
	return err
}

func LLEN(key string, conn redis.Conn) (int, error) {
	return redis.Int(conn.Do("LLEN", key))
}

func SADD(key string, member string, conn redis.Conn) error {
	_, err := conn.Do("SADD", key, member)
	return err
}

func SREM(key string, member string, conn redis.Conn) error {
	_, err := conn.Do("SREM", key, member)
	return err
}

func SMEMBERS(key string, conn redis.Conn) ([]string, error) {
	return redis.Strings(conn.Do("SMEMBERS", key))
}
