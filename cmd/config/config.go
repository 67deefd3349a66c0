package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	Server      ServerConfig
	RecordStore RecordStoreConfig
	Redis       RedisConfig
	Database    DatabaseConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Payment     PaymentConfig
	Email       EmailConfig
	WhatsApp    WhatsAppConfig
	Catalog     CatalogConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

// RecordStoreConfig points at the NocoDB instance holding catalog and orders.
type RecordStoreConfig struct {
	BaseURL         string        `envconfig:"NOCODB_URL"`
	APIToken        string        `envconfig:"NOCODB_API_TOKEN"`
	Profile         string        `envconfig:"NOCODB_SCHEMA_PROFILE" default:"simple"`
	ProductsTable   string        `envconfig:"NOCODB_PRODUCTS_TABLE_ID"`
	OrdersTable     string        `envconfig:"NOCODB_ORDERS_TABLE_ID"`
	OrderItemsTable string        `envconfig:"NOCODB_ORDER_ITEMS_TABLE_ID"`
	Timeout         time.Duration `envconfig:"NOCODB_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Enabled false skips Redis entirely: catalog reads go straight to the
	// store and admin login answers 503.
	Enabled     bool          `envconfig:"REDIS_ENABLED" default:"true"`
	PoolSize    int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
}

// DatabaseConfig backs the payment event journal. Empty host disables it.
type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST"`
	Port            int           `envconfig:"DB_PORT" default:"3306"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"kidswear"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// RabbitMQConfig enables queued notification delivery. Empty host disables it.
type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"guest"`
}

type AuthConfig struct {
	AdminUsername     string        `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `envconfig:"JWT_SECRET"`
	JWTExpiration     time.Duration `envconfig:"JWT_EXPIRATION" default:"12h"`
	SessionExpTime    time.Duration `envconfig:"SESSION_EXPIRATION" default:"12h"`
}

type PaymentConfig struct {
	PublicBaseURL     string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
	WebhookSecret     string `envconfig:"PAYMENT_WEBHOOK_SECRET"`
	AllowMockWebhooks bool   `envconfig:"ALLOW_MOCK_WEBHOOKS" default:"false"`
}

type EmailConfig struct {
	APIBaseURL string        `envconfig:"EMAIL_API_URL" default:"https://api.resend.com"`
	APIKey     string        `envconfig:"RESEND_API_KEY"`
	From       string        `envconfig:"EMAIL_FROM"`
	Timeout    time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
}

type WhatsAppConfig struct {
	APIBaseURL      string        `envconfig:"WHATSAPP_API_URL" default:"https://graph.facebook.com/v19.0"`
	AccessToken     string        `envconfig:"WHATSAPP_ACCESS_TOKEN"`
	PhoneNumberID   string        `envconfig:"WHATSAPP_PHONE_NUMBER_ID"`
	Language        string        `envconfig:"WHATSAPP_TEMPLATE_LANGUAGE" default:"en"`
	AdminRecipients string        `envconfig:"WHATSAPP_ADMIN_RECIPIENTS"`
	Timeout         time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"10s"`

	OrderCreatedTemplate     string `envconfig:"WHATSAPP_TEMPLATE_ORDER_CREATED"`
	PaymentCompletedTemplate string `envconfig:"WHATSAPP_TEMPLATE_PAYMENT_COMPLETED"`
	PaymentFailedTemplate    string `envconfig:"WHATSAPP_TEMPLATE_PAYMENT_FAILED"`
	OrderConfirmedTemplate   string `envconfig:"WHATSAPP_TEMPLATE_ORDER_CONFIRMED"`
	OrderShippedTemplate     string `envconfig:"WHATSAPP_TEMPLATE_ORDER_SHIPPED"`
	OrderDeliveredTemplate   string `envconfig:"WHATSAPP_TEMPLATE_ORDER_DELIVERED"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"2m"`
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// GetDSN returns the MySQL DSN of the payment event journal.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (c *Config) GetRabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
