package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	storageAPIEnvKey     = "STORAGE_API_URL"
	storageTokenEnvKey   = "STORAGE_AUTH_TOKEN"
	gatewayPatternEnvKey = "IPFS_GATEWAY_PATTERN"
	verifyIntervalEnvKey = "VERIFY_INTERVAL"
)

const (
	defaultGatewayPattern = "https://ipfs.io/ipfs/%s"
	defaultVerifyInterval = 15 * time.Second

	// the upload size cap is enforced before any storage network call is
	// attempted
	maxUploadBytes int64 = 100 << 20
)

type App struct {
	Port             string
	NodeURL          string
	DBConnectionURL  string
	StorageAPIURL    string
	StorageAuthToken string
	GatewayPattern   string
	VerifyInterval   time.Duration
	MaxUploadBytes   int64
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	storageAPI, ok := os.LookupEnv(storageAPIEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, storageAPIEnvKey)
	}

	// token is optional, a self-hosted ipfs node needs none
	storageToken := os.Getenv(storageTokenEnvKey)

	gatewayPattern, ok := os.LookupEnv(gatewayPatternEnvKey)
	if !ok {
		gatewayPattern = defaultGatewayPattern
	}

	verifyInterval := defaultVerifyInterval
	if raw, ok := os.LookupEnv(verifyIntervalEnvKey); ok {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", verifyIntervalEnvKey, err)
		}
		verifyInterval = parsed
	}

	return App{
		Port:             port,
		NodeURL:          nodeURL,
		DBConnectionURL:  dbConn,
		StorageAPIURL:    storageAPI,
		StorageAuthToken: storageToken,
		GatewayPattern:   gatewayPattern,
		VerifyInterval:   verifyInterval,
		MaxUploadBytes:   maxUploadBytes,
	}, nil
}
