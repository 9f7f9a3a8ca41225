package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: 服务不可用.
	StatusServiceUnavailable = 503
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrInvalidCredentials - 401: 邮箱或密码错误.
	ErrInvalidCredentials
	// ErrLastAdmin - 400: 不能删除最后一个管理员.
	ErrLastAdmin
)

// 招标请求相关错误码 (102xxx).
const (
	// ErrTenderRequestNotFound - 404: 招标请求不存在.
	ErrTenderRequestNotFound int = iota + 102000
	// ErrInvalidRequestStatus - 400: 无效的请求状态.
	ErrInvalidRequestStatus
	// ErrEmptyNoteContent - 400: 备注内容为空.
	ErrEmptyNoteContent
)

// 联系消息相关错误码 (103xxx).
const (
	// ErrContactMessageNotFound - 404: 联系消息不存在.
	ErrContactMessageNotFound int = iota + 103000
)

// 展示内容相关错误码 (104xxx).
const (
	// ErrTenderNotFound - 404: 项目案例不存在.
	ErrTenderNotFound int = iota + 104000
	// ErrTestimonialNotFound - 404: 客户评价不存在.
	ErrTestimonialNotFound
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
	// ErrDatabaseUnavailable - 503: 数据库不可用.
	ErrDatabaseUnavailable
)
