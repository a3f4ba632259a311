package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a ledger daemon listen address in format [host]:[port]
//	-l ledger API base URL
//	-g gateway base URL
//	-contract target contract address
//	-wallet-key hex ed25519 wallet seed
//	-hash-key response integrity hash key
//	-snapshot-dsn client SQLite snapshot DSN
//	-d ledger PostgreSQL DSN
//	-master-secret dev keyring master secret
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-operation-timeout outer timeout of a create or reveal flow
//	-reload-interval client reload interval
//	-block-interval ledger block interval
//	-projection-weight share of the verified average in the projection
//	-log-file client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("transcript-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var ledgerURL, gatewayURL string
	var contractAddress, walletKey, hashKey string
	var snapshotDSN, ledgerDSN string
	var masterSecret string
	var jsonConfigPath string
	var requestTimeout, operationTimeout time.Duration
	var reloadInterval, blockInterval time.Duration
	var projectionWeight float64
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&ledgerURL, "l", "", "Ledger API base URL")
	fs.StringVar(&gatewayURL, "g", "", "Gateway base URL")
	fs.StringVar(&contractAddress, "contract", "", "Target contract address")
	fs.StringVar(&walletKey, "wallet-key", "", "Hex ed25519 wallet seed")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&snapshotDSN, "snapshot-dsn", "", "Client snapshot SQLite DSN")
	fs.StringVar(&ledgerDSN, "d", "", "Ledger database DSN")
	fs.StringVar(&masterSecret, "master-secret", "", "Dev keyring master secret")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Create/reveal flow timeout (e.g., 2m)")
	fs.DurationVar(&reloadInterval, "reload-interval", 0, "Client reload interval (e.g., 30s)")
	fs.DurationVar(&blockInterval, "block-interval", 0, "Ledger block interval (e.g., 2s)")
	fs.Float64Var(&projectionWeight, "projection-weight", 0, "Share of the verified average in the projection")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ContractAddress: contractAddress,
			WalletKey:       walletKey,
			HashKey:         hashKey,
			LogFile:         logFile,
		},
		Storage: Storage{
			Snapshot: DB{DSN: snapshotDSN},
			Ledger:   DB{DSN: ledgerDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			LedgerURL:        ledgerURL,
			GatewayURL:       gatewayURL,
			RequestTimeout:   requestTimeout,
			OperationTimeout: operationTimeout,
		},
		Gateway: Gateway{
			MasterSecret: masterSecret,
		},
		Workers: Workers{
			ReloadInterval: reloadInterval,
			BlockInterval:  blockInterval,
		},
		Policy: Policy{
			ProjectionWeight: projectionWeight,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
