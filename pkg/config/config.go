package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/admpub/json5"
	"github.com/admpub/log"
	"github.com/joho/godotenv"

	"github.com/admpub/product-analyzer/pkg/chartjs"
	"github.com/admpub/product-analyzer/pkg/chartutil"
	"github.com/admpub/product-analyzer/pkg/product"
	"github.com/admpub/product-analyzer/pkg/storage"
)

const (
	EnvDevelopment = `development`
	EnvProduction  = `production`
	EnvTesting     = `testing`
)

type Config struct {
	Env         string `json:"env"`
	Listen      string `json:"listen"`
	CSVDataPath string `json:"csv_data_path"`
	Storage     string `json:"storage"`
	ChartJSURL  string `json:"chartjs_url"`
	Theme       string `json:"theme"`
	Debug       *bool  `json:"debug,omitempty"`

	storager storage.Storager
	mu       sync.Mutex
}

type envDefaults struct {
	debug   bool
	storage string
}

var defaults = map[string]envDefaults{
	EnvDevelopment: {debug: true},
	EnvProduction:  {debug: false},
	EnvTesting:     {debug: true, storage: `memory://`},
}

var ErrUnknownEnv = errors.New(`unknown environment`)

// SetDefaults fills unset fields from the environment variables and the
// per-environment defaults.
func (c *Config) SetDefaults() error {
	overrideFromEnv(&c.Env, `PRODUCT_ENV`)
	overrideFromEnv(&c.Listen, `PRODUCT_LISTEN`)
	overrideFromEnv(&c.CSVDataPath, `CSV_DATA_PATH`)
	overrideFromEnv(&c.Storage, `DATABASE_URL`)
	if len(c.Env) == 0 {
		c.Env = EnvDevelopment
	}
	def, ok := defaults[c.Env]
	if !ok {
		return fmt.Errorf(`%w: %s`, ErrUnknownEnv, c.Env)
	}
	if c.Debug == nil {
		debug := def.debug
		c.Debug = &debug
	}
	if len(c.Storage) == 0 {
		c.Storage = def.storage
	}
	if len(c.Storage) == 0 {
		c.Storage = `memory://`
	}
	if len(c.Listen) == 0 {
		c.Listen = `:5000`
	}
	if len(c.CSVDataPath) == 0 {
		c.CSVDataPath = `products.csv`
	}
	if len(c.ChartJSURL) == 0 {
		c.ChartJSURL = chartjs.DefaultScriptURL
	}
	if len(c.Theme) == 0 {
		c.Theme = chartutil.Theme
	}
	return nil
}

func overrideFromEnv(field *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); len(v) > 0 {
		*field = v
	}
}

func (c *Config) IsDebug() bool {
	return c.Debug != nil && *c.Debug
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{`.env`}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil {
			log.Debugf(`loaded environment from %s`, file)
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf(`failed to load %s: %w`, file, err)
		}
	}
	return nil
}

// LoadConfig reads the JSON5 config file at path. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	if len(path) > 0 {
		byteValue, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json5.Unmarshal(byteValue, config); err != nil {
			return nil, fmt.Errorf(`failed to parse %s: %w`, path, err)
		}
	}
	if err := config.SetDefaults(); err != nil {
		return nil, err
	}
	return config, nil
}

// Storager opens the configured store and loads the product CSV into it.
// A failed open is retried on the next call.
func (c *Config) Storager() (storage.Storager, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.storager != nil {
		return c.storager, nil
	}
	em, err := c.openStorager()
	if err != nil {
		return nil, err
	}
	c.storager = em
	return em, nil
}

func (c *Config) openStorager() (storage.Storager, error) {
	em, err := storage.New(c.Storage)
	if err != nil {
		return nil, err
	}
	if err = Import(em, c.CSVDataPath); err != nil {
		em.Close()
		return nil, err
	}
	return em, nil
}

// Import loads the CSV at path into em, natively when em supports it.
func Import(em storage.Storager, path string) error {
	if importer, ok := em.(storage.CSVImporter); ok {
		n, err := importer.ImportCSV(path)
		if err != nil {
			return err
		}
		log.Infof(`imported %d products from %s`, n, path)
		return nil
	}
	products, err := product.ReadCSV(path)
	if err != nil {
		return err
	}
	if err = em.Replace(products); err != nil {
		return err
	}
	log.Infof(`loaded %d products from %s`, len(products), path)
	return nil
}

// Reload re-imports the CSV into the already opened store.
func (c *Config) Reload() error {
	em, err := c.Storager()
	if err != nil {
		return err
	}
	return Import(em, c.CSVDataPath)
}

func (c *Config) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.storager != nil {
		c.storager.Close()
		c.storager = nil
	}
}
