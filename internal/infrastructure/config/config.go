package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、.env文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Mode            string        `mapstructure:"mode" validate:"oneof=debug release test"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	EnableSwagger   bool          `mapstructure:"enable_swagger"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=sqlite mysql postgres"`
	Path            string        `mapstructure:"path" validate:"required_if=Driver sqlite"` // sqlite文件路径
	Host            string        `mapstructure:"host" validate:"required_unless=Driver sqlite"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 按驱动生成连接字符串
// - sqlite:   books.db
// - mysql:    user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// - postgres: host=... user=... password=... dbname=... port=... sslmode=disable
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		// loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
		loc := url.QueryEscape(d.Loc)
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			d.Host, d.User, d.Password, d.DBName, d.Port, d.SSLMode)
	default:
		return d.Path
	}
}

type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	ListTTL      time.Duration `mapstructure:"list_ttl"`
}

// Addr 返回Redis地址
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"` // OTLP gRPC端点，如localhost:4317
}

type LogConfig struct {
	SQL bool `mapstructure:"sql"` // 是否打印SQL
}

// setDefaults 默认值（无配置文件也能启动）
// 注意：Unmarshal只认识已注册的key，环境变量覆盖的字段必须在这里出现
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.enable_swagger", true)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "books.db")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.list_ttl", 30*time.Second)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "bookshelf")
	v.SetDefault("tracing.endpoint", "localhost:4317")

	v.SetDefault("log.sql", false)
}

// Load 加载配置
// 优先级（高→低）：
// 1. 环境变量（PORT，或BOOKSHELF_前缀，如BOOKSHELF_DATABASE_DRIVER）
// 2. .env文件（存在时加载到进程环境变量）
// 3. config/config.yaml 或 ./config.yaml（可选）
// 4. 代码内默认值
func Load() (*Config, error) {
	// .env不存在不算错误
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// 设置配置文件路径
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// 环境特定配置（如config.prod.yaml）
	v.SetEnvPrefix("BOOKSHELF")
	if env := os.Getenv("BOOKSHELF_ENV"); env != "" {
		v.SetConfigName("config." + env)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（BOOKSHELF_DATABASE_PASSWORD → database.password）
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT是唯一对外约定的环境变量
	if err := v.BindEnv("server.port", "PORT", "BOOKSHELF_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}

	// 解析到结构体
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 配置验证
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}
	return nil
}
