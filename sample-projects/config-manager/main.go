package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	validkit "github.com/reoring/validkit"
	"github.com/reoring/validkit/dsl"
	"github.com/reoring/validkit/rules"
	"github.com/reoring/validkit/source"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `json:"app" yaml:"app"`
	Database DatabaseConfig `json:"database" yaml:"database"`
	Redis    RedisConfig    `json:"redis" yaml:"redis"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Features FeaturesConfig `json:"features" yaml:"features"`
}

type AppConfig struct {
	Name        string            `json:"name" yaml:"name"`
	Version     string            `json:"version" yaml:"version"`
	Environment string            `json:"environment" yaml:"environment"`
	Port        int               `json:"port" yaml:"port"`
	Host        string            `json:"host" yaml:"host"`
	TLS         TLSConfig         `json:"tls" yaml:"tls"`
	Cors        CorsConfig        `json:"cors" yaml:"cors"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
}

type TLSConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	CertFile string `json:"certFile" yaml:"certFile"`
	KeyFile  string `json:"keyFile" yaml:"keyFile"`
}

type CorsConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Origins []string `json:"origins" yaml:"origins"`
}

type DatabaseConfig struct {
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	Database     string `json:"database" yaml:"database"`
	Username     string `json:"username" yaml:"username"`
	Password     string `json:"password" yaml:"password"`
	MaxConns     int    `json:"maxConns" yaml:"maxConns"`
	MaxIdleConns int    `json:"maxIdleConns" yaml:"maxIdleConns"`
	SSLMode      string `json:"sslMode" yaml:"sslMode"`
}

type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Database int    `json:"database" yaml:"database"`
	Password string `json:"password" yaml:"password"`
	PoolSize int    `json:"poolSize" yaml:"poolSize"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}

type FeaturesConfig struct {
	Analytics bool `json:"analytics" yaml:"analytics"`
	Debugging bool `json:"debugging" yaml:"debugging"`
}

// ConfigManager handles configuration loading and validation
type ConfigManager struct {
	schema validkit.Typed[Config]
	log    *slog.Logger
}

func NewConfigManager(log *slog.Logger) *ConfigManager {
	port := dsl.Int().Coerce().Range(1, 65535)

	schema := validkit.Object().
		Field("app", validkit.Object().
			Field("name", dsl.Str()).
			Field("version", dsl.Str().Regex(`^\d+\.\d+\.\d+`)).
			Field("environment", dsl.OneOf("development", "staging", "production").Default("development")).
			Field("port", port.Default(8080)).
			Field("host", dsl.Str().Default("0.0.0.0")).
			Field("tls", validkit.Object().
				Field("enabled", dsl.Bool().Coerce().Default(false)).
				Field("certFile", dsl.Str().When(rules.Truthy("app.tls.enabled"))).
				Field("keyFile", dsl.Str().When(rules.Truthy("app.tls.enabled")))).
			Field("cors", validkit.Object().
				Field("enabled", dsl.Bool().Coerce().Default(true)).
				Field("origins", dsl.List(dsl.Str()).Default([]any{"*"}))).
			Field("metadata", dsl.Dict(validkit.KindString, dsl.Str().Coerce()).Default(map[string]any{}))).
		Field("database", validkit.Object().
			Field("host", dsl.Str()).
			Field("port", port.Default(5432)).
			Field("database", dsl.Str()).
			Field("username", dsl.Str()).
			Field("password", dsl.Str().Coerce().Default("")).
			Field("maxConns", dsl.Int().Coerce().Min(1).Default(10)).
			Field("maxIdleConns", dsl.Int().Coerce().Min(0).Default(5)).
			Field("sslMode", dsl.OneOf("disable", "prefer", "require").Default("prefer"))).
		Field("redis", validkit.Object().
			Field("host", dsl.Str().Default("localhost")).
			Field("port", port.Default(6379)).
			Field("database", dsl.Int().Coerce().Range(0, 15).Default(0)).
			Field("password", dsl.Str().Coerce().Default("")).
			Field("poolSize", dsl.Int().Coerce().Min(1).Default(10))).
		Field("logging", validkit.Object().
			Field("level", dsl.OneOf("debug", "info", "warn", "error").Default("info")).
			Field("format", dsl.OneOf("json", "text").Default("json")).
			Field("output", dsl.Str().Default("stdout"))).
		Field("features", validkit.Object().
			Field("analytics", dsl.Bool().Coerce().Default(true)).
			Field("debugging", dsl.Bool().Coerce().Default(false)))

	return &ConfigManager{
		schema: validkit.Define[Config](schema),
		log:    log,
	}
}

// LoadConfig validates base.yaml in full, then validates <env>.yaml as a
// partial document over it, so the override file only lists what changes.
func (cm *ConfigManager) LoadConfig(env string) (Config, error) {
	merged, err := cm.loadMerged(env)
	if err != nil {
		return Config{}, err
	}
	return cm.schema.Validate(merged, validkit.Opt{Logger: cm.log})
}

func (cm *ConfigManager) loadMerged(env string) (any, error) {
	baseData, err := cm.loadFile("base.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load base config: %w", err)
	}
	base, err := validkit.Validate(baseData, cm.schema, validkit.Opt{Logger: cm.log})
	if err != nil {
		return nil, fmt.Errorf("failed to parse base config: %w", err)
	}

	envFile := env + ".yaml"
	if !cm.fileExists(envFile) {
		return base, nil
	}
	envData, err := cm.loadFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s config: %w", env, err)
	}
	merged, err := validkit.Validate(envData, cm.schema, validkit.Opt{
		Partial: true,
		Base:    base,
		Logger:  cm.log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", env, err)
	}
	return merged, nil
}

func (cm *ConfigManager) ValidateConfig(env string) error {
	if _, err := cm.LoadConfig(env); err != nil {
		var iss validkit.Issues
		if errors.As(err, &iss) {
			for _, it := range iss {
				fmt.Fprintln(os.Stderr, "  -", it)
			}
		}
		return err
	}
	fmt.Printf("Configuration for environment '%s' is valid\n", env)
	return nil
}

func (cm *ConfigManager) ShowConfig(env string, maskSecrets bool) error {
	config, err := cm.LoadConfig(env)
	if err != nil {
		return err
	}

	if maskSecrets {
		config = cm.maskSecrets(config)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Configuration for environment: %s\n", env)
	fmt.Println(strings.Repeat("=", len(env)+31))
	fmt.Print(string(data))

	return nil
}

// ShowSample prints a representative configuration built from the schema.
func (cm *ConfigManager) ShowSample() error {
	data, err := yaml.Marshal(validkit.Sample(cm.schema))
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func (cm *ConfigManager) GenerateTemplate() error {
	templates := map[string]string{
		"base.yaml": `# Base configuration (common settings)
app:
  name: "MyWebApp"
  version: "1.0.0"
  host: "0.0.0.0"
  port: 8080
  tls:
    enabled: false
  cors:
    enabled: true
    origins: ["*"]
  metadata:
    author: "Your Name"
    description: "Web application"

database:
  host: "localhost"
  port: 5432
  database: "myapp"
  username: "postgres"
  maxConns: 10
  maxIdleConns: 5
  sslMode: "prefer"

redis:
  host: "localhost"
  port: 6379
  database: 0
  poolSize: 10

logging:
  level: "info"
  format: "json"
  output: "stdout"

features:
  analytics: true
  debugging: false
`,
		"development.yaml": `# Development environment overrides
app:
  environment: "development"
  port: 3000

database:
  password: "${DB_PASSWORD:-dev_password}"
  sslMode: "disable"

logging:
  level: "debug"

features:
  debugging: true
`,
		"production.yaml": `# Production environment overrides
app:
  environment: "production"
  port: 443
  tls:
    enabled: true
    certFile: "${TLS_CERT_FILE}"
    keyFile: "${TLS_KEY_FILE}"
  cors:
    origins: ["https://example.com", "https://app.example.com"]

database:
  host: "${DB_HOST}"
  password: "${DB_PASSWORD}"
  maxConns: 50
  maxIdleConns: 10
  sslMode: "require"

redis:
  host: "${REDIS_HOST}"
  password: "${REDIS_PASSWORD}"
  poolSize: 50

logging:
  level: "warn"
  output: "${LOG_OUTPUT:-stdout}"
`,
	}

	for filename, content := range templates {
		if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		fmt.Printf("Generated %s\n", filename)
	}
	fmt.Println("Validate with: go run . validate --env=development")
	return nil
}

func (cm *ConfigManager) loadFile(filename string) (any, error) {
	if !cm.fileExists(filename) {
		return nil, fmt.Errorf("file %s does not exist", filename)
	}
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return source.YAML(cm.expandEnvVars(raw))
}

func (cm *ConfigManager) fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars substitutes ${VAR} and ${VAR:-default}.
func (cm *ConfigManager) expandEnvVars(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		if name, def, ok := strings.Cut(expr, ":-"); ok {
			if value := os.Getenv(name); value != "" {
				return []byte(value)
			}
			return []byte(def)
		}
		return []byte(os.Getenv(expr))
	})
}

func (cm *ConfigManager) maskSecrets(config Config) Config {
	masked := config
	if masked.Database.Password != "" {
		masked.Database.Password = "***masked***"
	}
	if masked.Redis.Password != "" {
		masked.Redis.Password = "***masked***"
	}
	if masked.App.TLS.KeyFile != "" {
		masked.App.TLS.KeyFile = "***masked***"
	}
	return masked
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if getBoolFlag("--verbose") {
		level = slog.LevelDebug
	}
	cm := NewConfigManager(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	switch os.Args[1] {
	case "validate":
		err = cm.ValidateConfig(getEnvFlag())
	case "show":
		err = cm.ShowConfig(getEnvFlag(), !getBoolFlag("--no-mask"))
	case "generate":
		if !getBoolFlag("--template") {
			err = errors.New("use --template flag to generate template files")
			break
		}
		err = cm.GenerateTemplate()
	case "sample":
		err = cm.ShowSample()
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`validkit Config Manager Sample

Usage: %[1]s <command> [flags...]

Commands:
  validate [--env=<env>]            Validate configuration for environment
  show [--env=<env>] [--no-mask]    Show merged configuration (default: mask secrets)
  generate --template               Generate template configuration files
  sample                            Print a sample configuration built from the schema

Flags:
  --env=<environment>   Environment (default: development)
  --no-mask             Don't mask sensitive information
  --verbose             Log dropped unknown keys

Environment Files:
  base.yaml             Base configuration (required)
  <environment>.yaml    Environment-specific overrides (optional)
`, os.Args[0])
}

func getEnvFlag() string {
	for _, arg := range os.Args {
		if v, ok := strings.CutPrefix(arg, "--env="); ok {
			return v
		}
	}
	return "development"
}

func getBoolFlag(flag string) bool {
	for _, arg := range os.Args {
		if arg == flag {
			return true
		}
	}
	return false
}
