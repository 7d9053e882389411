package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means "all
// interfaces".
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

// parseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-api-url base URL of the qodefly API
//	-request-timeout outbound request timeout (e.g., "30s")
//	-session-store token store: memory, file, sqlite, redis
//	-session-key storage key of the token
//	-session-file file store path
//	-session-secret file store sealing secret
//	-sqlite-dsn sqlite store database file
//	-redis-addr redis store address host:port
//	-a gateway address in format [host]:[port]
//	-cookie-secret gateway cookie signing secret
//	-cookie-ttl gateway cookie lifetime (e.g., "720h")
//	-log-level log level
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("qodefly", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var gatewayAddress NetAddress
	var apiURL, sessionStore, sessionKey, sessionFile, sessionSecret string
	var sqliteDSN, redisAddr, cookieSecret, logLevel, logFile, jsonConfigPath string
	var requestTimeout, cookieTTL time.Duration

	fs.StringVar(&apiURL, "api-url", "", "Base URL of the qodefly API")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sessionStore, "session-store", "", "Token store: memory, file, sqlite, redis")
	fs.StringVar(&sessionKey, "session-key", "", "Storage key of the token")
	fs.StringVar(&sessionFile, "session-file", "", "File store path")
	fs.StringVar(&sessionSecret, "session-secret", "", "File store sealing secret")
	fs.StringVar(&sqliteDSN, "sqlite-dsn", "", "SQLite store database file")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis store address host:port")
	fs.Var(&gatewayAddress, "a", "Gateway net address host:port")
	fs.StringVar(&cookieSecret, "cookie-secret", "", "Gateway cookie signing secret")
	fs.DurationVar(&cookieTTL, "cookie-ttl", 0, "Gateway cookie lifetime (e.g., 720h)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Store:      sessionStore,
			Key:        sessionKey,
			FilePath:   sessionFile,
			FileSecret: sessionSecret,
			SQLiteDSN:  sqliteDSN,
			RedisAddr:  redisAddr,
		},
		Gateway: Gateway{
			Address:      gatewayAddress.String(),
			CookieSecret: cookieSecret,
			CookieTTL:    cookieTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty, "localhost" or a literal IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
