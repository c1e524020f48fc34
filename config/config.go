package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Built-in defaults for the notification and scoring pipelines.
const (
	defaultAntispamHours      = 24
	defaultRadiusKm           = 5.0
	defaultSendTimeout        = 10 * time.Second
	defaultDispatchWorkers    = 8
	defaultAggregationWorkers = 4
	defaultActivationInterval = time.Minute
	defaultQualityRunAt       = "03:00"
	defaultQualityTimezone    = "UTC"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Notify configures the dispatch pipeline triggered by offer activation.
	Notify NotifyConfig `json:"notify" yaml:"notify"`

	// Quality configures the daily vendor scoring job.
	Quality QualityConfig `json:"quality" yaml:"quality"`

	// Scheduler configures the wall-clock job cadence.
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Push configures the outbound push transport.
	Push *PushConfig `json:"push" yaml:"push"`

	// PubSub configures offer lifecycle event publishing.
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NotifyConfig defines anti-spam and fan-out behavior of the dispatcher.
type NotifyConfig struct {
	// AntispamHours is the minimum interval before the same
	// (offer, subscriber, kind) notification may be resent.
	AntispamHours int `json:"antispamHours" yaml:"antispamHours" validate:"min=0"`

	// DefaultRadiusKm applies to area subscriptions created without a radius.
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm" validate:"min=0"`

	// SendTimeout bounds a single outbound push so a hung endpoint cannot
	// stall the batch.
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	// DispatchWorkers caps concurrent sends per activated offer.
	DispatchWorkers int `json:"dispatchWorkers" yaml:"dispatchWorkers" validate:"min=0"`

	// OfferURLBase is prefixed to the offer id to build the click-through URL
	// carried in the push payload.
	OfferURLBase string `json:"offerUrlBase" yaml:"offerUrlBase"`
}

// QualityConfig defines the thresholds and cadence of vendor scoring.
type QualityConfig struct {
	MinOrders         int64   `json:"minOrders" yaml:"minOrders" validate:"min=0"`
	MinQualityScore   float64 `json:"minQualityScore" yaml:"minQualityScore" validate:"min=0,max=100"`
	MinCompletionRate float64 `json:"minCompletionRate" yaml:"minCompletionRate" validate:"min=0,max=1"`
	MinAvgRating      float64 `json:"minAvgRating" yaml:"minAvgRating" validate:"min=0,max=5"`

	// Workers caps concurrent per-vendor aggregation.
	Workers int `json:"workers" yaml:"workers" validate:"min=0"`

	// RunAt is the local wall-clock time ("HH:MM") of the daily run.
	RunAt string `json:"runAt" yaml:"runAt"`

	// Timezone is the IANA zone RunAt is interpreted in.
	Timezone string `json:"timezone" yaml:"timezone"`
}

// SchedulerConfig defines tick cadence of the background jobs.
type SchedulerConfig struct {
	// ActivationInterval is the fine-grained tick driving offer activation.
	ActivationInterval time.Duration `json:"activationInterval" yaml:"activationInterval"`
}

// PushConfig selects and credentials the push transport.
type PushConfig struct {
	// Provider is "fcm" or "webpush".
	Provider string `json:"provider" yaml:"provider"`

	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
	WebPush  *WebPushConfig  `json:"webpush" yaml:"webpush"`
}

// FirebaseConfig defines Firebase Cloud Messaging credentials.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// WebPushConfig defines VAPID credentials for the Web Push transport.
type WebPushConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// Subject is the contact URI (mailto: or https:) sent to push services.
	Subject string `json:"subject" yaml:"subject"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing.
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider).
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider).
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider).
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: QUALITY_MINORDERS -> quality.minOrders (not quality.minorders)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Notify.AntispamHours == 0 {
		cfg.Notify.AntispamHours = defaultAntispamHours
	}
	if cfg.Notify.DefaultRadiusKm == 0 {
		cfg.Notify.DefaultRadiusKm = defaultRadiusKm
	}
	if cfg.Notify.SendTimeout == 0 {
		cfg.Notify.SendTimeout = defaultSendTimeout
	}
	if cfg.Notify.DispatchWorkers == 0 {
		cfg.Notify.DispatchWorkers = defaultDispatchWorkers
	}

	if cfg.Quality.MinOrders == 0 {
		cfg.Quality.MinOrders = 10
	}
	if cfg.Quality.MinQualityScore == 0 {
		cfg.Quality.MinQualityScore = 75
	}
	if cfg.Quality.MinCompletionRate == 0 {
		cfg.Quality.MinCompletionRate = 0.90
	}
	if cfg.Quality.MinAvgRating == 0 {
		cfg.Quality.MinAvgRating = 4.5
	}
	if cfg.Quality.Workers == 0 {
		cfg.Quality.Workers = defaultAggregationWorkers
	}
	if strings.TrimSpace(cfg.Quality.RunAt) == "" {
		cfg.Quality.RunAt = defaultQualityRunAt
	}
	if strings.TrimSpace(cfg.Quality.Timezone) == "" {
		cfg.Quality.Timezone = defaultQualityTimezone
	}

	if cfg.Scheduler.ActivationInterval == 0 {
		cfg.Scheduler.ActivationInterval = defaultActivationInterval
	}
}

// AntispamWindow returns the anti-spam window as a duration.
func (cfg *Config) AntispamWindow() time.Duration {
	return time.Duration(cfg.Notify.AntispamHours) * time.Hour
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
