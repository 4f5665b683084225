package config

type Config struct {
	RunAddress         string `env:"RUN_ADDRESS"`
	DatabaseURI        string `env:"DATABASE_URL"`
	TelegramAPIAddress string `env:"TELEGRAM_API_ADDRESS"`
	TelegramBotToken   string `env:"TELEGRAM_BOT_TOKEN"`
	ClientTimeout      int    `env:"CLIENT_TIMEOUT"`
}
