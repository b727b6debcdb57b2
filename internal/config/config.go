package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	ethNodeEnvKey   = "ETH_NODE_URL"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	contractEnvKey  = "CONTRACT_ADDRESS"

	operatorKeyEnvKey = "OPERATOR_PRIVATE_KEY"
	componentsEnvKey  = "COMPONENTS"
	logLevelEnvKey    = "LOG_LEVEL"
	logFileEnvKey     = "LOG_FILE"

	scanStartBlockEnvKey   = "SCAN_START_BLOCK"
	scanChunkSizeEnvKey    = "SCAN_CHUNK_SIZE"
	scanPollEnvKey         = "SCAN_POLL_INTERVAL"
	scanBackoffEnvKey      = "SCAN_BACKOFF"
	reconcileEnvKey        = "RECONCILE_INTERVAL"
	reconcileBackoffEnvKey = "RECONCILE_BACKOFF"
	reconcileWorkersEnvKey = "RECONCILE_WORKERS"
	publishEnvKey          = "PUBLISH_INTERVAL"
	nonceTTLEnvKey         = "NONCE_TTL"
	nonceSingleUseEnvKey   = "NONCE_SINGLE_USE"
	sessionMaxAgeEnvKey    = "SESSION_MAX_AGE"
	sessionSecureEnvKey    = "SESSION_SECURE_COOKIE"
)

const (
	ComponentAPI        = "api"
	ComponentScanner    = "scanner"
	ComponentReconciler = "reconciler"
	ComponentPublisher  = "publisher"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	ContractAddress string

	// OperatorPrivateKey signs createProject transactions. The publisher
	// stays disabled while it is empty.
	OperatorPrivateKey string
	Components         []string
	LogLevel           string
	LogFile            string

	Scanner    Scanner
	Reconciler Reconciler
	Publisher  Publisher
	Nonce      Nonce
	Session    Session
}

type Scanner struct {
	StartBlock   uint64
	ChunkSize    uint64
	PollInterval time.Duration
	Backoff      time.Duration
}

type Reconciler struct {
	Interval time.Duration
	Backoff  time.Duration
	Workers  int
}

type Publisher struct {
	Interval time.Duration
}

type Nonce struct {
	TTL       time.Duration
	SingleUse bool
}

type Session struct {
	MaxAge       time.Duration
	SecureCookie bool
}

func NewApp() (App, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(apiPortEnvKey, "8080")
	v.SetDefault(componentsEnvKey, strings.Join([]string{
		ComponentAPI, ComponentScanner, ComponentReconciler, ComponentPublisher,
	}, ","))
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(scanStartBlockEnvKey, 0)
	v.SetDefault(scanChunkSizeEnvKey, 1999)
	v.SetDefault(scanPollEnvKey, 500*time.Millisecond)
	v.SetDefault(scanBackoffEnvKey, 60*time.Second)
	v.SetDefault(reconcileEnvKey, time.Second)
	v.SetDefault(reconcileBackoffEnvKey, 60*time.Second)
	v.SetDefault(reconcileWorkersEnvKey, 8)
	v.SetDefault(publishEnvKey, 20*time.Second)
	v.SetDefault(nonceTTLEnvKey, 30*time.Minute)
	v.SetDefault(nonceSingleUseEnvKey, true)
	v.SetDefault(sessionMaxAgeEnvKey, 24*time.Hour)
	v.SetDefault(sessionSecureEnvKey, false)

	required := map[string]*string{}
	app := App{}
	required[ethNodeEnvKey] = &app.NodeURL
	required[dbConnEnvKey] = &app.DBConnectionURL
	required[jwtSecretEnvKey] = &app.JWTSecret
	required[contractEnvKey] = &app.ContractAddress

	for _, key := range []string{ethNodeEnvKey, dbConnEnvKey, jwtSecretEnvKey, contractEnvKey} {
		if !v.IsSet(key) || v.GetString(key) == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*required[key] = v.GetString(key)
	}

	app.Port = v.GetString(apiPortEnvKey)
	app.OperatorPrivateKey = v.GetString(operatorKeyEnvKey)
	app.LogLevel = v.GetString(logLevelEnvKey)
	app.LogFile = v.GetString(logFileEnvKey)
	app.Components = splitList(v.GetString(componentsEnvKey))

	app.Scanner = Scanner{
		StartBlock:   v.GetUint64(scanStartBlockEnvKey),
		ChunkSize:    v.GetUint64(scanChunkSizeEnvKey),
		PollInterval: v.GetDuration(scanPollEnvKey),
		Backoff:      v.GetDuration(scanBackoffEnvKey),
	}
	if app.Scanner.ChunkSize == 0 {
		return App{}, fmt.Errorf("%s must be greater than zero", scanChunkSizeEnvKey)
	}

	app.Reconciler = Reconciler{
		Interval: v.GetDuration(reconcileEnvKey),
		Backoff:  v.GetDuration(reconcileBackoffEnvKey),
		Workers:  v.GetInt(reconcileWorkersEnvKey),
	}
	if app.Reconciler.Workers < 1 {
		return App{}, fmt.Errorf("%s must be at least 1", reconcileWorkersEnvKey)
	}

	app.Publisher = Publisher{
		Interval: v.GetDuration(publishEnvKey),
	}

	app.Nonce = Nonce{
		TTL:       v.GetDuration(nonceTTLEnvKey),
		SingleUse: v.GetBool(nonceSingleUseEnvKey),
	}

	app.Session = Session{
		MaxAge:       v.GetDuration(sessionMaxAgeEnvKey),
		SecureCookie: v.GetBool(sessionSecureEnvKey),
	}

	return app, nil
}

// Enabled reports whether the named component should run in this process.
func (a App) Enabled(component string) bool {
	for _, c := range a.Components {
		if c == component {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
