package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Buckets     Buckets     `mapstructure:",squash"`
	TopFamilies TopFamilies `mapstructure:",squash"`
	Chart       Chart       `mapstructure:",squash"`
	MonthsChart MonthsChart `mapstructure:",squash"`
	Report      Report      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Buckets define os limiares em USD que separam as famílias em três
// grupos (small < limiar₁ <= medium < limiar₂ <= large).
type Buckets struct {
	SmallThresholdUSD  float64 `mapstructure:"bucket_small_threshold_usd"`
	MediumThresholdUSD float64 `mapstructure:"bucket_medium_threshold_usd"`
}

// TopFamilies configura o ranking de famílias por métrica.
type TopFamilies struct {
	TopN     int      `mapstructure:"top_families_n"`
	Excluded []string `mapstructure:"top_families_excluded"`
}

// Chart configura a geometria e os eixos comuns a todos os gráficos.
type Chart struct {
	OutputDir          string `mapstructure:"chart_output_dir"`
	Width              int    `mapstructure:"chart_width"`
	Height             int    `mapstructure:"chart_height"`
	TickIntervalMonths int    `mapstructure:"chart_tick_interval_months"`
}

// MonthsChart configura o gráfico agregado por mês: fator de escala do
// eixo USD e os epsilons por métrica para anotar picos.
type MonthsChart struct {
	USDFactor              float64 `mapstructure:"months_usd_factor"`
	PeakEpsilonCount       float64 `mapstructure:"peak_epsilon_count"`
	PeakEpsilonBTC         float64 `mapstructure:"peak_epsilon_btc"`
	PeakEpsilonUSDMillions float64 `mapstructure:"peak_epsilon_usd_millions"`
}

// Report configura o artefato json opcional com o resumo dos grupos.
type Report struct {
	Enabled bool `mapstructure:"report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	// Limiares de $1000 e $50000, respectivamente
	viper.SetDefault("BUCKET_SMALL_THRESHOLD_USD", 1000)
	viper.SetDefault("BUCKET_MEDIUM_THRESHOLD_USD", 50000)

	viper.SetDefault("TOP_FAMILIES_N", 15)
	viper.SetDefault("TOP_FAMILIES_EXCLUDED", "BlackCat") // Exclusão por problema de qualidade nos dados

	viper.SetDefault("CHART_OUTPUT_DIR", ".")
	viper.SetDefault("CHART_WIDTH", 1760)
	viper.SetDefault("CHART_HEIGHT", 320)
	viper.SetDefault("CHART_TICK_INTERVAL_MONTHS", 3) // Um tick a cada trimestre

	viper.SetDefault("MONTHS_USD_FACTOR", 1000000) // Eixo USD em milhões no gráfico mensal
	viper.SetDefault("PEAK_EPSILON_COUNT", 75)
	viper.SetDefault("PEAK_EPSILON_BTC", 300)
	viper.SetDefault("PEAK_EPSILON_USD_MILLIONS", 1.6)

	viper.SetDefault("REPORT_ENABLED", false) // Habilitar escrita do resumo json
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	return config, nil
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}
}
