package assistant

import (
	"fmt"

	"personal-info-system/internal/engine"
	"personal-info-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const defaultSessionID = "default"

// ChatReq 一次自由文本请求
type ChatReq struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content" binding:"required"`
}

// SessionReq 只带会话标识的请求
type SessionReq struct {
	SessionID string `json:"session_id"`
}

// SetFieldReq 编辑待补全数据的单个字段
type SetFieldReq struct {
	SessionID string `json:"session_id"`
	Field     string `json:"field" binding:"required"`
	Value     any    `json:"value"`
}

func sessionID(id string) string {
	if id == "" {
		return defaultSessionID
	}
	return id
}

// Chat 处理自由文本请求：解析意图并调度；
// 解析失败只返回错误，不产生任何数据变化
func Chat(c *gin.Context) {
	var req ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	id := sessionID(req.SessionID)

	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		log.Error("读取会话失败", "session_id", id, "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	data.Messages = append(data.Messages, Message{Role: "user", Content: req.Content})

	outcome, err := eng.Dispatch(c.Request.Context(), data.Session, req.Content)
	if err != nil {
		log.Warn("意图调度失败", "session_id", id, "error", err)
		// 聊天历史仍然保留，方便用户换个说法重试
		if saveErr := sessions.Save(c.Request.Context(), id, data); saveErr != nil {
			log.Error("保存会话失败", "session_id", id, "error", saveErr)
		}
		response.Fail(c, response.MapError(err))
		return
	}

	data.Messages = append(data.Messages, Message{Role: "assistant", Content: outcome.Message})
	if err := sessions.Save(c.Request.Context(), id, data); err != nil {
		log.Error("保存会话失败", "session_id", id, "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, outcome)
}

// Messages 返回会话的聊天历史
func Messages(c *gin.Context) {
	id := sessionID(c.Query("session_id"))
	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, data.Messages)
}

// Pending 返回待补全数据；没有时返回空
func Pending(c *gin.Context) {
	id := sessionID(c.Query("session_id"))
	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{
		"state":   data.Session.State,
		"pending": data.Session.Pending(),
	})
}

// SetField 编辑待补全数据的单个字段
func SetField(c *gin.Context) {
	var req SetFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	id := sessionID(req.SessionID)

	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	if err := data.Session.SetField(req.Field, req.Value); err != nil {
		if errors.Is(err, engine.ErrNoPending) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("当前没有待补全的记录"))
			return
		}
		response.Fail(c, response.MapError(err))
		return
	}

	if err := sessions.Save(c.Request.Context(), id, data); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c, data.Session.Pending())
}

// Confirm 确认保存待补全的记录
func Confirm(c *gin.Context) {
	var req SessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	id := sessionID(req.SessionID)

	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	title := ""
	if pending := data.Session.Pending(); pending != nil {
		title = fmt.Sprintf("%v", pending["title"])
	}

	recordID, err := data.Session.Confirm(eng.Store())
	if err != nil {
		if errors.Is(err, engine.ErrNoPending) {
			response.Fail(c, response.ErrInvalidRequest.WithTips("当前没有待补全的记录"))
			return
		}
		log.Error("确认保存失败", "session_id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	data.Messages = append(data.Messages, Message{
		Role:    "assistant",
		Content: fmt.Sprintf("已保存记录：%s", title),
	})
	if err := sessions.Save(c.Request.Context(), id, data); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("补全记录已保存", "session_id", id, "record_id", recordID)
	response.Success(c, gin.H{"id": recordID})
}

// Cancel 丢弃待补全的记录
func Cancel(c *gin.Context) {
	var req SessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	id := sessionID(req.SessionID)

	data, err := sessions.Load(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	data.Session.Cancel()
	if err := sessions.Save(c.Request.Context(), id, data); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	response.Success(c)
}
