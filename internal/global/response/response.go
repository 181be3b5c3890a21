package response

import (
	"errors"
	"net/http"
	"runtime/debug"

	"personal-info-system/internal/global/logger"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应结构
type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Data   any    `json:"data,omitempty"`
	Origin string `json:"origin,omitempty"`
}

// Success 返回成功响应，data 可选
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: 200,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应；非 *Error 的错误统一按内部错误处理
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}
	c.JSON(http.StatusOK, ResponseBody{
		Code:   e.Code,
		Msg:    e.Message,
		Origin: e.Origin,
	})
}

// Recovery 捕获 handler 中的 panic，记录堆栈并返回内部错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("panic recovered",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		c.JSON(http.StatusOK, ResponseBody{
			Code: ErrServerInternal.Code,
			Msg:  ErrServerInternal.Message,
		})
		c.Abort()
	}
}
