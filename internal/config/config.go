package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env            string `yaml:"env"`
	HTTPServer     `yaml:"http_server"`
	OrderDB        `yaml:"order_db"`
	LogConfig      `yaml:"log_config"`
	Gateway        `yaml:"gateway"`
	KafkaService   `yaml:"kafka-service"`
	InvoiceService `yaml:"invoice-service"`
	SMTP           `yaml:"smtp"`
	Frontend       `yaml:"frontend"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Gateway struct {
	MerchantID string `yaml:"merchant_id"`
	HashKey    string `yaml:"hash_key" env:"GATEWAY_HASH_KEY"`
	HashIV     string `yaml:"hash_iv" env:"GATEWAY_HASH_IV"`
	PayGateURL string `yaml:"pay_gate_url"`
	ReturnURL  string `yaml:"return_url"`
	NotifyURL  string `yaml:"notify_url"`
	Version    string `yaml:"version"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

type InvoiceService struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key" env:"INVOICE_API_KEY"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	From     string `yaml:"from"`
}

type Frontend struct {
	PaySuccessURL string `yaml:"pay_success_url"`
	PayFailureURL string `yaml:"pay_failure_url"`
}

func MustLoad() *OrderConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
