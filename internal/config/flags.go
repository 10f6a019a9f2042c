package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a [StructuredConfig]. Both binaries accept the
// same set, each reads the fields it needs.
//
// Flags:
//
//	-a draft server listen address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN (PostgreSQL URL on the server, SQLite path on the client)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-hash-key request body hash key
//	-app-version version reported by /api/version/
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-server draft server address used by the client
//	-adapter-timeout client request timeout
//	-token bearer token of the client
//	-autosave-interval client autosave interval
//	-user user id
//	-exam exam id
//	-problems comma-separated problem ids
//	-languages comma-separated languages, "name" or "id=name"
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var problems, languages string
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("exam-drafts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&cfg.App.Version, "app-version", "", "Application version")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Draft server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Draft server request timeout")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer token")
	fs.DurationVar(&cfg.Workers.AutosaveInterval, "autosave-interval", 0, "Autosave interval (e.g., 30s)")
	fs.StringVar(&cfg.Exam.UserID, "user", "", "User id")
	fs.StringVar(&cfg.Exam.ExamID, "exam", "", "Exam id")
	fs.StringVar(&problems, "problems", "", "Comma-separated problem ids")
	fs.StringVar(&languages, "languages", "", "Comma-separated languages")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()
	cfg.Exam.Problems = splitList(problems)
	cfg.Exam.Languages = splitList(languages)

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
