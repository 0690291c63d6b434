package notify

// Config holds settings for the Telegram notifier.
type Config struct {
	// Token is the Telegram bot token. Empty disables notifications.
	Token string `mapstructure:"token" default:""`
	// ChatID is the chat that receives messages. Empty disables notifications.
	ChatID string `mapstructure:"chat_id" default:""`
	// TimeoutSeconds bounds a single sendMessage call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
