package test

import (
	"testing"

	"personal-info-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 校验错误码；WithTips 会在消息后追加提示，所以只要求包含
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Contains(t, resp.Msg, expected.Message)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}
