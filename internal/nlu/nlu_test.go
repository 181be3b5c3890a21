package nlu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-info-system/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// newTestParser 起一个假的 chat-completions 服务，content 原样作为模型回复
func newTestParser(t *testing.T, status int, content string, choices int) *Parser {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		require.Equal(t, "user", req.Messages[0].Role)
		require.Contains(t, req.Messages[0].Content, "personal_info", "提示词必须带表结构摘要")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		resp := map[string]any{"choices": []any{}}
		if choices > 0 {
			resp["choices"] = []any{
				map[string]any{"message": map[string]any{"content": content}},
			}
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)

	return NewParser(resty.New(), config.AI{
		BaseURL:     server.URL,
		APIKey:      "test-key",
		Model:       "deepseek-chat",
		Temperature: 0.2,
	})
}

func TestParseValidIntent(t *testing.T) {
	content := `{"action":"insert","table":"honors","criteria":"","data":{"title":"蓝桥杯一等奖"}}`
	p := newTestParser(t, http.StatusOK, content, 1)

	descriptor, err := p.Parse(context.Background(), "我获得了蓝桥杯一等奖")
	require.NoError(t, err)
	require.Equal(t, "insert", descriptor.Action)
	require.Equal(t, "honors", descriptor.Table)
	require.Equal(t, "蓝桥杯一等奖", descriptor.Data["title"])
}

func TestParseDefaultsTableToRecords(t *testing.T) {
	p := newTestParser(t, http.StatusOK, `{"action":"query","criteria":"日程"}`, 1)

	descriptor, err := p.Parse(context.Background(), "查一下")
	require.NoError(t, err)
	require.Equal(t, "records", descriptor.Table)
	require.NotNil(t, descriptor.Data)
}

func TestParseMalformedContent(t *testing.T) {
	p := newTestParser(t, http.StatusOK, "好的，我来帮你查询日程", 1)

	_, err := p.Parse(context.Background(), "查看我的日程")
	require.True(t, errors.Is(err, ErrMalformedIntent))
}

func TestParseUnrecognizedIntent(t *testing.T) {
	p := newTestParser(t, http.StatusOK, `{"action":"drop","table":"records"}`, 1)
	_, err := p.Parse(context.Background(), "删库")
	require.True(t, errors.Is(err, ErrUnrecognizedIntent))

	p = newTestParser(t, http.StatusOK, `{"action":"query","table":"categories"}`, 1)
	_, err = p.Parse(context.Background(), "查分类")
	require.True(t, errors.Is(err, ErrUnrecognizedIntent))
}

func TestParseUpstreamErrors(t *testing.T) {
	p := newTestParser(t, http.StatusBadGateway, "", 0)
	_, err := p.Parse(context.Background(), "你好")
	require.True(t, errors.Is(err, ErrUpstream))

	// 2xx 但 choices 为空
	p = newTestParser(t, http.StatusOK, "", 0)
	_, err = p.Parse(context.Background(), "你好")
	require.True(t, errors.Is(err, ErrUpstream))
}
