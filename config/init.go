package config

import (
	"log"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var instance Config

// Init 加载配置：先读取可选的 config.yaml，再用环境变量覆盖
func Init() {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("读取配置文件失败: %v", err)
		}
		// 没有配置文件时完全依赖环境变量和默认值
	} else if err := v.Unmarshal(&instance); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	if err := envconfig.Process("", &instance); err != nil {
		log.Fatalf("读取环境变量配置失败: %v", err)
	}

	applyDefaults(&instance)
}

func applyDefaults(c *Config) {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Mode == "" {
		c.Mode = ModeDebug
	}
	if c.Prefix != "" {
		c.Prefix = strings.Trim(c.Prefix, "/")
	}
	if c.Storage.Home == "" {
		c.Storage.Home = "./data"
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://api.deepseek.com"
	}
	if c.AI.Model == "" {
		c.AI.Model = "deepseek-chat"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.2
	}
	if c.AI.TimeoutSecond == 0 {
		c.AI.TimeoutSecond = 30
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func Get() *Config {
	return &instance
}
