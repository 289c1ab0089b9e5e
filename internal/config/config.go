package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the whole service configuration.
//
// Every key can be set from the environment: "dynamodb.endpoint" is read from
// DYNAMODB_ENDPOINT, "mercadopago.access_token" from MERCADOPAGO_ACCESS_TOKEN
// and so on. A YAML file is optional (CONFIG_FILE).
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	AWS           AWSConfig           `mapstructure:"aws"`
	DynamoDB      DynamoDBConfig      `mapstructure:"dynamodb"`
	MercadoPago   MercadoPagoConfig   `mapstructure:"mercadopago"`
	Payment       PaymentConfig       `mapstructure:"payment"`
	Telegram      TelegramConfig      `mapstructure:"telegram"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	Timezone string `mapstructure:"timezone"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type DynamoDBConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	EventsTable      string `mapstructure:"events_table"`
	ClientsTable     string `mapstructure:"clients_table"`
	FreelancersTable string `mapstructure:"freelancers_table"`
	AssignmentsTable string `mapstructure:"assignments_table"`
	BudgetsTable     string `mapstructure:"budgets_table"`
	ChargesTable     string `mapstructure:"charges_table"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type PaymentConfig struct {
	GatewayMock bool `mapstructure:"gateway_mock"`
}

type TelegramConfig struct {
	BotToken string        `mapstructure:"bot_token"`
	APIURL   string        `mapstructure:"api_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type NotificationsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

// MockPayments reports whether charges skip the real Mercado Pago call.
func (c Config) MockPayments() bool {
	return c.Payment.GatewayMock || c.MercadoPago.Mock
}

// Sandbox reports whether the Mercado Pago token is a test credential.
func (c MercadoPagoConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

// Location resolves App.Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables are used.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.timezone", "America/Sao_Paulo")
	v.SetDefault("server.http_addr", ":8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.events_table", "events")
	v.SetDefault("dynamodb.clients_table", "clients")
	v.SetDefault("dynamodb.freelancers_table", "freelancers")
	v.SetDefault("dynamodb.assignments_table", "assignments")
	v.SetDefault("dynamodb.budgets_table", "budgets")
	v.SetDefault("dynamodb.charges_table", "charges")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")
	v.SetDefault("payment.gateway_mock", false)

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.api_url", "https://api.telegram.org")
	v.SetDefault("telegram.timeout", "5s")

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.cron", "0 0 9 * * *")
}
