// Package nlu 把自由文本发给外部大模型服务，换回结构化的动作描述。
// 对返回内容零信任：非 2xx、空 choices、非 JSON、未知动作或表名都按错误处理。
package nlu

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"personal-info-system/config"
	"personal-info-system/internal/global/logger"
	"personal-info-system/internal/schema"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

var (
	// ErrUpstream AI 服务不可达、超时或响应为空
	ErrUpstream = errors.New("AI 服务请求失败")
	// ErrMalformedIntent AI 返回的内容不是合法 JSON
	ErrMalformedIntent = errors.New("AI返回格式错误")
	// ErrUnrecognizedIntent 动作或表名不在枚举内
	ErrUnrecognizedIntent = errors.New("无法识别AI操作")
)

// ActionDescriptor 一次经过校验的结构化动作
type ActionDescriptor struct {
	Action   string         `json:"action"`
	Table    string         `json:"table"`
	Criteria string         `json:"criteria"`
	Data     map[string]any `json:"data"`
}

// 允许 AI 操作的表；categories 只作为荣誉分类，不接受自然语言操作
var allowedTables = []string{
	schema.TablePerson, schema.TableRecord, schema.TableHonor,
	schema.TableSchedule, schema.TableEducation,
}

var allowedActions = []string{"query", "insert", "update", "delete"}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type Parser struct {
	client *resty.Client
	cfg    config.AI
	log    *slog.Logger
}

func NewParser(client *resty.Client, cfg config.AI) *Parser {
	return &Parser{
		client: client,
		cfg:    cfg,
		log:    logger.New("NLU"),
	}
}

// Parse 发送自由文本加表结构摘要，返回校验过的动作描述
func (p *Parser) Parse(ctx context.Context, freeText string) (*ActionDescriptor, error) {
	req := chatRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: buildPrompt(freeText)},
		},
		Temperature: p.cfg.Temperature,
	}

	var result chatResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(p.cfg.APIKey).
		SetBody(req).
		SetResult(&result).
		Post(p.cfg.BaseURL + "/v1/chat/completions")
	if err != nil {
		p.log.Error("请求 AI 服务失败", "error", err)
		return nil, errors.Wrap(ErrUpstream, err.Error())
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		p.log.Error("AI 服务返回非 2xx", "status", resp.StatusCode())
		return nil, errors.Wrapf(ErrUpstream, "status=%d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return nil, errors.Wrap(ErrUpstream, "AI响应为空")
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)

	var descriptor ActionDescriptor
	if err := json.Unmarshal([]byte(content), &descriptor); err != nil {
		p.log.Warn("AI 返回内容不是合法 JSON", "content", content)
		return nil, errors.Wrap(ErrMalformedIntent, err.Error())
	}

	if descriptor.Table == "" {
		descriptor.Table = schema.TableRecord
	}
	if !contains(allowedActions, descriptor.Action) {
		return nil, errors.Wrapf(ErrUnrecognizedIntent, "action=%q", descriptor.Action)
	}
	if !contains(allowedTables, descriptor.Table) {
		return nil, errors.Wrapf(ErrUnrecognizedIntent, "table=%q", descriptor.Table)
	}
	if descriptor.Data == nil {
		descriptor.Data = map[string]any{}
	}
	return &descriptor, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
