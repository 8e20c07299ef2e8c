package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL indica ausência da string de conexão com o banco.
// É o único erro de configuração que interrompe a inicialização.
var ErrMissingDatabaseURL = errors.New(
	"defina a variável de ligação à base de dados em DATABASE_URL",
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Sales     Sales     `mapstructure:",squash"`
	CacheWarm CacheWarm `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Driver string `mapstructure:"database_driver"`
	URL    string `mapstructure:"database_url"`
}

// Sales descreve o esquema consumido e o cache de carregamento. Os nomes
// de tabela e colunas são remapeáveis para acomodar esquemas reais
// diferentes do padrão (data, produto, vendas, objectivo, lucro).
type Sales struct {
	Table         string        `mapstructure:"sales_table"`
	DateColumn    string        `mapstructure:"sales_date_column"`
	ProductColumn string        `mapstructure:"sales_product_column"`
	SalesColumn   string        `mapstructure:"sales_amount_column"`
	TargetColumn  string        `mapstructure:"sales_target_column"`
	ProfitColumn  string        `mapstructure:"sales_profit_column"`
	CacheTTL      time.Duration `mapstructure:"sales_cache_ttl"`
}

type CacheWarm struct {
	CronSchedule string `mapstructure:"cache_warm_cron"`
	Enabled      bool   `mapstructure:"cache_warm_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	// DATABASE_URL não tem default: a ausência interrompe a inicialização

	viper.SetDefault("SALES_TABLE", "vendas")
	viper.SetDefault("SALES_DATE_COLUMN", "data")
	viper.SetDefault("SALES_PRODUCT_COLUMN", "produto")
	viper.SetDefault("SALES_AMOUNT_COLUMN", "vendas")
	viper.SetDefault("SALES_TARGET_COLUMN", "objectivo")
	viper.SetDefault("SALES_PROFIT_COLUMN", "lucro")
	viper.SetDefault("SALES_CACHE_TTL", "1h") // cache durante 1h para acelerar a navegação

	// Defaults para o aquecimento periódico do cache de vendas
	viper.SetDefault("CACHE_WARM_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("CACHE_WARM_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que a configuração mínima para o pipeline existe
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrMissingDatabaseURL
	}

	if c.Sales.CacheTTL <= 0 {
		c.Sales.CacheTTL = time.Hour
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
