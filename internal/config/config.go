package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Metrics   Metrics   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Auth struct {
	SecretKey         string        `mapstructure:"secret_key"`
	AccessTokenExpire time.Duration `mapstructure:"access_token_expire"`
}

// GoogleAds reúne as credenciais da aplicação e as políticas de consulta da plataforma de busca.
// O refresh token de cada conta fica no cadastro de contas.
type GoogleAds struct {
	ClientID          string        `mapstructure:"google_ads_client_id"`
	ClientSecret      string        `mapstructure:"google_ads_client_secret"`
	DeveloperToken    string        `mapstructure:"google_ads_developer_token"`
	LoginCustomerID   string        `mapstructure:"google_ads_login_customer_id"`
	BaseURL           string        `mapstructure:"google_ads_base_url"`
	Version           string        `mapstructure:"google_ads_version"`
	URL               string        `mapstructure:"-"`
	TokenURL          string        `mapstructure:"google_ads_token_url"`
	MetricWindow      string        `mapstructure:"google_ads_metric_window"`
	ConversionValue   float64       `mapstructure:"google_ads_conversion_value"`
	PartialResults    bool          `mapstructure:"google_ads_partial_results"`
	FanoutConcurrency int           `mapstructure:"google_ads_fanout_concurrency"`
	Timeout           time.Duration `mapstructure:"google_ads_timeout"`
}

// Meta reúne as credenciais da aplicação e as políticas de consulta da plataforma social.
// O access token de cada conta fica no cadastro de contas.
type Meta struct {
	AppID              string        `mapstructure:"meta_app_id"`
	AppSecret          string        `mapstructure:"meta_app_secret"`
	BaseURL            string        `mapstructure:"meta_base_url"`
	Version            string        `mapstructure:"meta_version"`
	URL                string        `mapstructure:"-"`
	DatePreset         string        `mapstructure:"meta_date_preset"`
	ConversionAction   string        `mapstructure:"meta_conversion_action"`
	ROASAction         string        `mapstructure:"meta_roas_action"`
	CreativeBestEffort bool          `mapstructure:"meta_creative_best_effort"`
	Timeout            time.Duration `mapstructure:"meta_timeout"`
}

type Metrics struct {
	Namespace string `mapstructure:"metrics_namespace"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE", "192h") // 8 dias

	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v20")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_METRIC_WINDOW", "")     // Sem restrição: totais atuais
	viper.SetDefault("GOOGLE_ADS_CONVERSION_VALUE", 0.0) // Zero: ROAS só com valor reportado pela plataforma
	viper.SetDefault("GOOGLE_ADS_PARTIAL_RESULTS", false)
	viper.SetDefault("GOOGLE_ADS_FANOUT_CONCURRENCY", 1)
	viper.SetDefault("GOOGLE_ADS_TIMEOUT", "30s")

	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_DATE_PRESET", "last_30d")
	viper.SetDefault("META_CONVERSION_ACTION", "purchase")
	viper.SetDefault("META_ROAS_ACTION", "omni_purchase")
	viper.SetDefault("META_CREATIVE_BEST_EFFORT", true)
	viper.SetDefault("META_TIMEOUT", "30s")

	viper.SetDefault("METRICS_NAMESPACE", "ads_dashboard")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Complete(); err != nil {
		return nil, err
	}

	return config, nil
}

// Complete deriva os campos calculados e valida as políticas configuradas
func (c *Config) Complete() error {
	c.GoogleAds.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.GoogleAds.BaseURL, "/"), c.GoogleAds.Version)
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	c.GoogleAds.MetricWindow = strings.ToUpper(strings.TrimSpace(c.GoogleAds.MetricWindow))
	if c.GoogleAds.FanoutConcurrency < 1 {
		c.GoogleAds.FanoutConcurrency = 1
	}
	if c.GoogleAds.ConversionValue < 0 {
		return fmt.Errorf("config: GOOGLE_ADS_CONVERSION_VALUE must not be negative")
	}
	if c.Meta.DatePreset == "" {
		c.Meta.DatePreset = "maximum"
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
