package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
	GatewayTimeout      = 504
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrNotPostOwner     = errors.New("无权操作他人帖子")
	ErrNotCommentAuthor = errors.New("无权删除他人评论")
	ErrAlreadyLiked     = errors.New("已点赞")
	ErrAlreadyFollowing = errors.New("已关注")
	ErrFollowSelf       = errors.New("不能关注自己")
	ErrCaptionTooLong   = errors.New("配文长度超出限制")
	ErrCommentEmpty     = errors.New("评论内容不能为空")
	ErrImageRequired    = errors.New("缺少图片资源")
	ErrFileNotSupported = errors.New("不支持的文件类型")
	ErrFileTooLarge     = errors.New("文件大小超出限制")
	ErrFileNotExist     = errors.New("文件不存在")
	ErrTimeout          = errors.New("请求超时")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrUserNotFound:     NotFound,
	ErrPostNotFound:     NotFound,
	ErrCommentNotFound:  NotFound,
	ErrNotPostOwner:     Forbidden,
	ErrNotCommentAuthor: Forbidden,
	ErrAlreadyLiked:     Conflict,
	ErrAlreadyFollowing: Conflict,
	ErrFollowSelf:       BadRequest,
	ErrCaptionTooLong:   BadRequest,
	ErrCommentEmpty:     BadRequest,
	ErrImageRequired:    BadRequest,
	ErrFileNotSupported: BadRequest,
	ErrFileTooLarge:     BadRequest,
	ErrFileNotExist:     BadRequest,
	ErrTimeout:          GatewayTimeout,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
