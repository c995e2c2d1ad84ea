package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	VNPay    VNPayConfig
	AI       AIConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DraftTTLMin int
	DraftPrefix string
}

type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	PaymentURL string
	ReturnURL  string
}

type AIConfig struct {
	GeminiAPIKey string
	Model        string
}

type KafkaConfig struct {
	Brokers      []string
	BookingTopic string
	PaymentTopic string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("WIZARD_DRAFT_TTL_MINUTES", 30)
	viper.SetDefault("WIZARD_DRAFT_PREFIX", "wizard:")
	viper.SetDefault("VNPAY_PAYMENT_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("KAFKA_BOOKING_TOPIC", "spa.bookings")
	viper.SetDefault("KAFKA_PAYMENT_TOPIC", "spa.payments")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	var brokers []string
	if raw := viper.GetString("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:        viper.GetString("REDIS_ADDR"),
			Password:    viper.GetString("REDIS_PASS"),
			DB:          viper.GetInt("REDIS_DB"),
			DraftTTLMin: viper.GetInt("WIZARD_DRAFT_TTL_MINUTES"),
			DraftPrefix: viper.GetString("WIZARD_DRAFT_PREFIX"),
		},
		VNPay: VNPayConfig{
			TmnCode:    viper.GetString("VNPAY_TMN_CODE"),
			HashSecret: viper.GetString("VNPAY_SECRET_KEY"),
			PaymentURL: viper.GetString("VNPAY_PAYMENT_URL"),
			ReturnURL:  viper.GetString("VNPAY_RETURN_URL"),
		},
		AI: AIConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
			Model:        viper.GetString("GEMINI_MODEL"),
		},
		Kafka: KafkaConfig{
			Brokers:      brokers,
			BookingTopic: viper.GetString("KAFKA_BOOKING_TOPIC"),
			PaymentTopic: viper.GetString("KAFKA_PAYMENT_TOPIC"),
		},
	}

	return config, nil
}
