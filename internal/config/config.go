package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"

	BusNone  = "none"
	BusKafka = "kafka"
	BusNATS  = "nats"
)

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
	Schema   string
	Table    string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Kafka struct {
	Brokers       []string
	ItemsTopic    string
	CheckoutTopic string
	Group         string
	Workers       int
}

type NATS struct {
	URL     string
	Subject string
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	AppEnv      string
	HTTPAddr    string
	CheckoutURL string
	CacheCap    int
	SessionCap  int

	StorageDriver string
	CheckoutBus   string
	IngestItems   bool

	Pg      Postgres
	Redis   Redis
	Kafka   Kafka
	NATS    NATS
	Breaker Breaker
	Retry   Retry
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		AppEnv:      envDefault("APP_ENV", "dev"),
		HTTPAddr:    envDefault("HTTP_ADDR", ":8081"),
		CheckoutURL: envDefault("CHECKOUT_URL", "/checkout.html"),
		CacheCap:    envInt("CACHE_CAP", 1000),
		SessionCap:  envInt("SESSION_CAP", 10000),

		StorageDriver: strings.ToLower(envDefault("STORAGE_DRIVER", DriverMemory)),
		CheckoutBus:   strings.ToLower(envDefault("CHECKOUT_BUS", BusNone)),
		IngestItems:   envBool("INGEST_ITEMS", false),

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
			Schema:   strings.TrimSpace(envDefault("DB_SCHEMA", "cart")),
			Table:    strings.TrimSpace(envDefault("TBL_SNAPSHOT", "session_snapshot")),
		},

		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
			TTL:      envDurationMS("REDIS_TTL", 0),
		},

		Kafka: Kafka{
			Brokers:       splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			ItemsTopic:    strings.TrimSpace(envDefault("CART_ITEMS_TOPIC", "cart-items")),
			CheckoutTopic: strings.TrimSpace(envDefault("CHECKOUT_TOPIC", "cart-checkout")),
			Group:         strings.TrimSpace(envDefault("KAFKA_GROUP", "cart-service")),
			Workers:       envInt("KAFKA_WORKERS", 4),
		},

		NATS: NATS{
			URL:     strings.TrimSpace(os.Getenv("NATS_URL")),
			Subject: strings.TrimSpace(envDefault("CHECKOUT_SUBJECT", "cart.checkout")),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 3),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 2*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.adjust()
	return cfg, nil
}

func (c Config) validate() error {
	req := map[string]string{}
	switch c.StorageDriver {
	case DriverMemory:
	case DriverRedis:
		req["REDIS_ADDR"] = c.Redis.Addr
	case DriverPostgres:
		req["PG_HOST"] = c.Pg.Host
		req["PG_DB"] = c.Pg.DB
		req["PG_USER"] = c.Pg.User
		req["PG_PASSWORD"] = c.Pg.Password
	default:
		return &invalidEnvError{Key: "STORAGE_DRIVER", Value: c.StorageDriver}
	}

	switch c.CheckoutBus {
	case BusNone:
	case BusKafka:
		req["KAFKA_BROKERS"] = strings.Join(c.Kafka.Brokers, ",")
	case BusNATS:
		req["NATS_URL"] = c.NATS.URL
	default:
		return &invalidEnvError{Key: "CHECKOUT_BUS", Value: c.CheckoutBus}
	}
	if c.IngestItems {
		req["KAFKA_BROKERS"] = strings.Join(c.Kafka.Brokers, ",")
	}

	var missing []string
	for k, v := range req {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	return nil
}

func (c *Config) adjust() {
	if c.CacheCap <= 0 {
		log.Printf("CACHE_CAP is %d, adjusting to 1", c.CacheCap)
		c.CacheCap = 1
	}
	if c.SessionCap <= 0 {
		log.Printf("SESSION_CAP is %d, adjusting to 1", c.SessionCap)
		c.SessionCap = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	if c.Kafka.Workers < 1 {
		c.Kafka.Workers = 1
	}
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type invalidEnvError struct{ Key, Value string }

func (e *invalidEnvError) Error() string {
	return "invalid value for " + e.Key + ": " + strconv.Quote(e.Value)
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
