package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Data DataConfig
	HTTP HTTPConfig
	Log  LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, production
	Name      string
	Brand     string // marca que se muestra en Inicio y en los reportes
	AssetsDir string // carpeta con foto1.jpg, foto2.jpg, foto3.jpg
	DocsFile  string // swagger.json de la API (opcional)
}

// DataConfig rutas de los dos archivos de datos. La extensión (.xlsx o .csv) define el formato.
type DataConfig struct {
	CatalogFile string
	SalesFile   string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, CATALOG_FILE, SALES_FILE, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	port, err := getInt(v, "HTTP_PORT", 8501)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "mala-inventario"),
			Brand:     getString(v, "APP_BRAND", "MALA"),
			AssetsDir: getString(v, "ASSETS_DIR", "assets"),
			DocsFile:  getString(v, "DOCS_FILE", "./docs/swagger.json"),
		},
		Data: DataConfig{
			CatalogFile: getString(v, "CATALOG_FILE", "base_datos_productos.xlsx"),
			SalesFile:   getString(v, "SALES_FILE", "ventas.xlsx"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: port,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
