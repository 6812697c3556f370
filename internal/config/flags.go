// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
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

// ParseFlags parses all configuration flags from args (normally
// os.Args[1:]).
//
// Flags:
//
//	-s MCP server event-stream URL
//	-a web listen address in format [host]:[port]
//	-c/-config JSON or YAML config file path
//	-app-name client name announced to the server
//	-app-version client version announced to the server
//	-ping-timeout event-stream ping timeout (e.g., "5s")
//	-connect-timeout web launch-time connect timeout (e.g., "30s")
//	-request-timeout web request timeout (e.g., "30s", "1m")
//	-shutdown-timeout web graceful shutdown timeout
//	-refresh-interval catalog refresh interval, 0 disables
//	-log-level zerolog level name
//	-log-file terminal client log file
func ParseFlags(args []string) (*StructuredConfig, error) {
	var listenAddress NetAddress
	var serverURL string
	var configPath string
	var appName, appVersion string
	var pingTimeout, connectTimeout, requestTimeout, shutdownTimeout time.Duration
	var refreshInterval time.Duration
	var logLevel, logFile string

	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	fs.StringVar(&serverURL, "s", "", "MCP server event-stream URL")
	fs.Var(&listenAddress, "a", "Web listen address host:port")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&appName, "app-name", "", "Client name announced to the server")
	fs.StringVar(&appVersion, "app-version", "", "Client version announced to the server")
	fs.DurationVar(&pingTimeout, "ping-timeout", 0, "Event-stream ping timeout (e.g., 5s)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Launch-time connect timeout (e.g., 30s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Web request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Catalog refresh interval, 0 disables")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Terminal client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:    appName,
			Version: appVersion,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			PingTimeout:    pingTimeout,
			ConnectTimeout: connectTimeout,
		},
		Server: Server{
			HTTPAddress:     listenAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		ConfigFilePath: configPath,
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
