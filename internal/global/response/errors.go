package response

// 错误码约定：前三位对应 HTTP 语义，后两位为业务序号
var (
	ErrInvalidRequest = newError(40001, "请求参数错误")
	ErrAlreadyExists  = newError(40002, "资源已存在")
	ErrNotFound       = newError(40401, "资源不存在")

	// 数据层错误
	ErrUnknownEntity = newError(42201, "未知的数据表")
	ErrValidation    = newError(42202, "数据校验失败")
	ErrInvalidField  = newError(42203, "非法的字段名")

	// AI 意图解析错误
	ErrUnrecognizedIntent = newError(42204, "无法识别AI操作")
	ErrUpstream           = newError(50201, "AI 服务请求失败")
	ErrMalformedIntent    = newError(50202, "AI返回格式错误")

	ErrServerInternal = newError(50000, "服务器内部错误")
	ErrDatabase       = newError(50001, "数据库操作失败")
)
