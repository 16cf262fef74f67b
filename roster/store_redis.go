package roster

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// RedisStore keeps the rosters in a Redis hash per chat, so they survive
// process restarts.
type RedisStore struct {
	rdclient *redis.Client
}

func NewRedisStore(redisURL string, redisPW string, redisDB int) *RedisStore {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisStore{
		rdclient: rdclient,
	}
}

func rosterKey(chatID int64) string {
	return fmt.Sprintf("roster:%d", chatID)
}

func (s *RedisStore) AddUser(chatID int64, user User) (bool, error) {
	userBytes, err := jsoniter.Marshal(user)
	if err != nil {
		return false, errors.Wrap(err, "marshalling roster user")
	}
	added, err := s.rdclient.HSetNX(context.Background(),
		rosterKey(chatID), fmt.Sprintf("%d", user.ID), userBytes).Result()
	if err != nil {
		return false, errors.Wrap(err, "storing roster user")
	}
	return added, nil
}

func (s *RedisStore) GetUsers(chatID int64) ([]User, error) {
	fields, err := s.rdclient.HGetAll(context.Background(), rosterKey(chatID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "loading roster")
	}
	users := make([]User, 0, len(fields))
	for _, userBytes := range fields {
		var user User
		if err := jsoniter.UnmarshalFromString(userBytes, &user); err != nil {
			return nil, errors.Wrap(err, "unmarshalling roster user")
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
