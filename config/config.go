package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host    string `envconfig:"HOST"`
	Port    string `envconfig:"PORT"`
	Prefix  string `envconfig:"PREFIX"`
	Mode    Mode   `envconfig:"MODE"`
	Storage Storage
	Sqlite  Sqlite
	Mysql   Mysql
	Redis   Redis
	AI      AI
	Log     Log `mapstructure:"Log"`
}

type Storage struct {
	// Home 附件与本地数据库文件的存放目录
	Home string `envconfig:"STORAGE_HOME" mapstructure:"home"`
}

type Sqlite struct {
	// Path 为空时使用 Storage.Home 下的 personal_management.db
	Path string `envconfig:"SQLITE_PATH" mapstructure:"path"`
}

type Mysql struct {
	// Enable 为 true 时使用 MySQL，否则使用 SQLite
	Enable   bool   `envconfig:"MYSQL_ENABLE" mapstructure:"enable"`
	Host     string `envconfig:"MYSQL_HOST" mapstructure:"host"`
	Port     string `envconfig:"MYSQL_PORT" mapstructure:"port"`
	Username string `envconfig:"MYSQL_USERNAME" mapstructure:"username"`
	Password string `envconfig:"MYSQL_PASSWORD" mapstructure:"password"`
	DBName   string `envconfig:"MYSQL_DB_NAME" mapstructure:"db_name"`
}

type Redis struct {
	// Host 为空时助手会话保存在进程内存中
	Host     string `envconfig:"REDIS_HOST" mapstructure:"host"`
	Port     string `envconfig:"REDIS_PORT" mapstructure:"port"`
	Password string `envconfig:"REDIS_PASSWORD" mapstructure:"password"`
	DB       int    `envconfig:"REDIS_DB" mapstructure:"db"`
}

type AI struct {
	BaseURL     string  `envconfig:"AI_BASE_URL" mapstructure:"base_url"`
	APIKey      string  `envconfig:"AI_API_KEY" mapstructure:"api_key"`
	Model       string  `envconfig:"AI_MODEL" mapstructure:"model"`
	Temperature float64 `envconfig:"AI_TEMPERATURE" mapstructure:"temperature"`
	// TimeoutSecond 请求 AI 服务的超时时间（秒）
	TimeoutSecond int `envconfig:"AI_TIMEOUT_SECOND" mapstructure:"timeout_second"`
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}
