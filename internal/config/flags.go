package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-driver storage driver (mongo, postgres, sqlite)
//	-mongo-uri mongo connection string
//	-mongo-db mongo database name
//	-d SQL database DSN
//	-redis redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-password-pepper password pepper
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit allowed requests per second per client
//	-seed insert default categories and filters
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var driver string
	var mongoURI, mongoDatabase string
	var databaseDSN string
	var redisAddress string
	var jsonConfigPath string
	var passwordPepper string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var rateLimit float64
	var seed bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&driver, "driver", "", "Storage driver: mongo, postgres or sqlite")
	flag.StringVar(&mongoURI, "mongo-uri", "", "Mongo connection string")
	flag.StringVar(&mongoDatabase, "mongo-db", "", "Mongo database name")
	flag.StringVar(&databaseDSN, "d", "", "SQL database DSN")
	flag.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&passwordPepper, "password-pepper", "", "Password pepper")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Float64Var(&rateLimit, "rate-limit", 0, "Allowed requests per second per client")
	flag.BoolVar(&seed, "seed", false, "Insert default categories and filters")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordPepper: passwordPepper,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Storage: Storage{
			Driver: driver,
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
		},
		Seed:         seed,
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
