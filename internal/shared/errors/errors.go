package errors

import "errors"

var (
	ErrMissingBotToken        = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrMissingAdminID         = errors.New("MAIN_ADMIN_ID environment variable is required")
	ErrChannelNotFound        = errors.New("channel not found")
	ErrChannelAlreadySaved    = errors.New("channel already saved")
	ErrWatermarkNotConfigured = errors.New("watermark is active but has no content configured")
	ErrFileTooLarge           = errors.New("file exceeds the download size limit")
)
