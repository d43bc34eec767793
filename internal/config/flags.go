package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from args (without the program
// name). Positional arguments left after the flags end up in
// [StructuredConfig.Args].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d registry database DSN
//	-w web app root with one directory per model
//	-c/-config json file path with configs
//	-app-version application version
//	-strict-config log dropped model config lines
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server server base URL used by the client
//	-client-timeout client request timeout
//	-watch-debounce model config watcher debounce (e.g., "500ms")
//	-copy copy the value printed by the client to the clipboard
//	-info print the registry row of a model instead of its config
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var webAppPath string
	var jsonConfigPath string
	var appVersion string
	var strictConfig bool
	var requestTimeout time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration
	var watchDebounce time.Duration
	var copyToClipboard bool
	var showInfo bool

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Registry database DSN")
	fs.StringVar(&webAppPath, "w", "", "Web app root path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.BoolVar(&strictConfig, "strict-config", false, "Log dropped model config lines")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL used by the client")
	fs.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.DurationVar(&watchDebounce, "watch-debounce", 0, "Model config watcher debounce (e.g., 500ms)")
	fs.BoolVar(&copyToClipboard, "copy", false, "Copy the printed config value to the clipboard")
	fs.BoolVar(&showInfo, "info", false, "Print the registry row of a model instead of its config")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:      appVersion,
			StrictConfig: strictConfig,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				WebAppPath: webAppPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			WatchDebounce: watchDebounce,
		},
		Client: Client{
			CopyToClipboard: copyToClipboard,
			ShowInfo:        showInfo,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "topologic"
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
