package assistant

import (
	"context"
	"encoding/json"
	"sync"

	"personal-info-system/config"
	"personal-info-system/internal/engine"

	"github.com/redis/go-redis/v9"
)

// Message 会话中的一条聊天消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// sessionData 一个会话的全部状态：补全状态机加聊天历史。
// 待补全数据没有过期时间，直到确认或取消为止。
type sessionData struct {
	Session  *engine.Session `json:"session"`
	Messages []Message       `json:"messages"`
}

func newSessionData() *sessionData {
	return &sessionData{Session: engine.NewSession()}
}

// sessionStore 会话存取；默认内存实现，配置了 Redis 时换成持久实现
type sessionStore interface {
	Load(ctx context.Context, id string) (*sessionData, error)
	Save(ctx context.Context, id string, data *sessionData) error
}

func newSessionStore() sessionStore {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return &memoryStore{sessions: map[string]*sessionData{}}
	}
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Host + ":" + cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionData
}

func (s *memoryStore) Load(_ context.Context, id string) (*sessionData, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return newSessionData(), nil
	}
	return data, nil
}

func (s *memoryStore) Save(_ context.Context, id string, data *sessionData) error {
	s.mu.Lock()
	s.sessions[id] = data
	s.mu.Unlock()
	return nil
}

type redisStore struct {
	client *redis.Client
}

func sessionKey(id string) string {
	return "assistant:session:" + id
}

func (s *redisStore) Load(ctx context.Context, id string) (*sessionData, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return newSessionData(), nil
	}
	if err != nil {
		return nil, err
	}
	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Session == nil {
		data.Session = engine.NewSession()
	}
	return &data, nil
}

func (s *redisStore) Save(ctx context.Context, id string, data *sessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	// 不设过期时间：待补全数据保留到确认或取消为止
	return s.client.Set(ctx, sessionKey(id), raw, 0).Err()
}
