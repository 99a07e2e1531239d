package constants

// 通用错误消息
const (
	// 认证相关错误
	ErrUnauthorized           = "未授权，请先登录"
	ErrInvalidToken           = "无效的Token"
	ErrInsufficientPermission = "权限不足"

	// 用户相关错误
	ErrUserNotFound      = "用户不存在"
	ErrAuthFailed        = "邮箱或密码错误"
	ErrEmailExists       = "该邮箱已被注册"
	ErrPasswordMismatch  = "两次输入的密码不一致"
	ErrTermsNotAgreed    = "请先同意服务条款"

	// 参数相关错误
	ErrInvalidParams  = "参数错误"
	ErrInvalidRequest = "无效请求格式"

	// 商品相关错误
	ErrDroneNotFound    = "商品不存在"
	ErrInvalidStatus    = "无效的在售状态"
	ErrInvalidPrice     = "价格必须为非负数"
	ErrNotListingOwner  = "只能管理自己发布的商品"

	// 广告相关错误
	ErrInvalidPlacement = "无效的广告位类型"
	ErrSlotNotFound     = "轮播槽位不存在或已过期"
	ErrSlotDismissed    = "轮播已被关闭"

	// 社区相关错误
	ErrPostNotFound    = "帖子不存在"
	ErrInvalidCategory = "无效的板块类别"

	// 收藏相关错误
	ErrAlreadyFavorited = "已收藏过该商品"
	ErrFavoriteNotFound = "收藏记录不存在"

	// 聊天相关错误
	ErrRoomNotFound = "会话不存在"

	// 系统错误
	ErrInternalServer = "服务器内部错误"
)

// 成功消息
const (
	SuccessLogin    = "登录成功"
	SuccessLogout   = "退出成功"
	SuccessRegister = "注册成功"
	SuccessCreate   = "创建成功"
	SuccessUpdate   = "更新成功"
	SuccessDelete   = "删除成功"
	SuccessGet      = "获取成功"
)
