// Package response 统一的响应信封与业务错误
// 所有接口返回 Response 结构，业务结果用 Code 区分，HTTP 状态码另行映射
package response

type ResponseCode int

// 业务成功码
const (
	Success ResponseCode = 100
)

// Response 响应信封
type Response struct {
	Message string       `json:"message"` // 人类可读的结果描述
	Code    ResponseCode `json:"code"`    // 业务码，成功固定为 Success
	Data    any          `json:"data"`    // 业务负载，错误时为 nil
}

// SuccessResponse 成功信封
func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

// ErrorResponse 错误信封，只携带业务码和消息
func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
	}
}
