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
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Dataset   Dataset  `mapstructure:",squash"`
	Workbook  Workbook `mapstructure:",squash"`
	Snapshot  Snapshot `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	MaxUploadMB    int64    `mapstructure:"max_upload_mb"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

// Dataset controla o ciclo de vida das planilhas enviadas
type Dataset struct {
	TTL          time.Duration `mapstructure:"dataset_ttl"`
	SweepCron    string        `mapstructure:"dataset_sweep_cron"`
	SweepEnabled bool          `mapstructure:"dataset_sweep_enabled"`
}

// Workbook define os nomes das abas esperadas
type Workbook struct {
	SalesSheet             string `mapstructure:"sales_sheet"`
	TargetsSheet           string `mapstructure:"targets_sheet"`
	SalespersonTargetSheet string `mapstructure:"salesperson_targets_sheet"`
}

type Snapshot struct {
	Enabled bool `mapstructure:"snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("MAX_UPLOAD_MB", 20)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/metas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("DATASET_TTL", "2h")
	viper.SetDefault("DATASET_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("DATASET_SWEEP_ENABLED", true)

	// Vazio = primeira aba da planilha de vendas
	viper.SetDefault("SALES_SHEET", "")
	viper.SetDefault("TARGETS_SHEET", "metas")
	viper.SetDefault("SALESPERSON_TARGETS_SHEET", "Planilha1")

	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("SNAPSHOT_ENABLED", false)

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante valores mínimos para a execução do servidor
func (c *Config) Validate() error {
	if c.Dataset.TTL <= 0 {
		return fmt.Errorf("config: DATASET_TTL deve ser positivo, recebido %s", c.Dataset.TTL)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_MB deve ser positivo, recebido %d", c.Server.MaxUploadMB)
	}
	if strings.TrimSpace(c.Workbook.TargetsSheet) == "" || strings.TrimSpace(c.Workbook.SalespersonTargetSheet) == "" {
		return fmt.Errorf("config: nomes das abas de metas não podem ser vazios")
	}
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
