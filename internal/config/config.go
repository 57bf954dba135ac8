package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Ledger       Ledger       `mapstructure:",squash"`
	Snapshot     Snapshot     `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Gemini       Gemini       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Auth define o acesso do dono da loja ao painel
type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	OwnerEmail        string        `mapstructure:"auth_owner_email"`
	OwnerPasswordHash string        `mapstructure:"auth_owner_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

// Ledger define de onde o CSV de vendas é carregado.
// Quando CSVURL estiver preenchida ela tem prioridade sobre CSVPath.
type Ledger struct {
	CSVPath        string `mapstructure:"ledger_csv_path"`
	CSVURL         string `mapstructure:"ledger_csv_url"`
	Delimiter      string `mapstructure:"ledger_delimiter"`
	BaseWindowDays int    `mapstructure:"ledger_base_window_days"`
	DefaultDays    int    `mapstructure:"ledger_default_days"`
}

type Snapshot struct {
	StaticPath string `mapstructure:"snapshot_static_path"`
}

type SnapshotSync struct {
	CronSchedule  string `mapstructure:"snapshot_sync_cron"`
	RetentionDays int    `mapstructure:"snapshot_sync_retention_days"`
	Enabled       bool   `mapstructure:"snapshot_sync_enabled"`
}

type Gemini struct {
	APIKey  string        `mapstructure:"gemini_api_key"`
	BaseURL string        `mapstructure:"gemini_base_url"`
	Model   string        `mapstructure:"gemini_model"`
	Timeout time.Duration `mapstructure:"gemini_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/jewelai?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OWNER_EMAIL", "owner@jewelai.local")
	viper.SetDefault("AUTH_OWNER_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("LEDGER_CSV_PATH", "data/sales_data.csv")
	viper.SetDefault("LEDGER_CSV_URL", "")
	viper.SetDefault("LEDGER_DELIMITER", ",")
	viper.SetDefault("LEDGER_BASE_WINDOW_DAYS", 30) // Janela base do snapshot usado no modo estimativa
	viper.SetDefault("LEDGER_DEFAULT_DAYS", 30)

	viper.SetDefault("SNAPSHOT_STATIC_PATH", "data/inventory_categories.json")

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 90)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-pro-latest")
	viper.SetDefault("GEMINI_TIMEOUT", "60s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = config.Database.BuildDSN()

	if config.Ledger.BaseWindowDays <= 0 {
		config.Ledger.BaseWindowDays = 30
	}

	return config, nil
}

// BuildDSN monta a string de conexão a partir dos campos separados
func (d Database) BuildDSN() string {
	return d.Driver + "://" + d.User + ":" + d.Password + "@" + d.URL
}

// DelimiterRune retorna o separador de campos do CSV, com vírgula como padrão
func (l Ledger) DelimiterRune() rune {
	for _, r := range l.Delimiter {
		return r
	}
	return ','
}

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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
