package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "令牌无效",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:       "用户不存在",
	ErrUserAlreadyExist:   "用户已存在",
	ErrInvalidCredentials: "邮箱或密码错误",
	ErrLastAdmin:          "不能删除最后一个管理员",

	// 招标请求相关错误码
	ErrTenderRequestNotFound: "招标请求不存在",
	ErrInvalidRequestStatus:  "无效的请求状态",
	ErrEmptyNoteContent:      "备注内容为空",

	// 联系消息相关错误码
	ErrContactMessageNotFound: "联系消息不存在",

	// 展示内容相关错误码
	ErrTenderNotFound:      "项目案例不存在",
	ErrTestimonialNotFound: "客户评价不存在",

	// 数据库相关错误码
	ErrDatabase:            "数据库错误",
	ErrRecordNotFound:      "记录不存在",
	ErrDatabaseUnavailable: "数据库不可用",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExist:   StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrLastAdmin:          StatusBadRequest,

	// 招标请求相关错误码
	ErrTenderRequestNotFound: StatusNotFound,
	ErrInvalidRequestStatus:  StatusBadRequest,
	ErrEmptyNoteContent:      StatusBadRequest,

	// 联系消息相关错误码
	ErrContactMessageNotFound: StatusNotFound,

	// 展示内容相关错误码
	ErrTenderNotFound:      StatusNotFound,
	ErrTestimonialNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:            StatusInternalServerError,
	ErrRecordNotFound:      StatusNotFound,
	ErrDatabaseUnavailable: StatusServiceUnavailable,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
