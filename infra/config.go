package infra

import (
	"fmt"
	"strings"
	"time"
)

const defaultListingSslMode = "prefer"

// ListingDbConfig locates the pimcore database whose object tables the grid reads.
type ListingDbConfig struct {
	// Url wins over the individual settings when set.
	Url      string
	Host     string
	Port     string
	Database string
	User     string
	Password string
	SslMode  string
	// Host is the socket directory, no port is sent.
	Socket         bool
	MaxConnections int
	// ApplicationName shows up in pg_stat_activity for listing sessions.
	ApplicationName string
	// StatementTimeout is applied server side to every listing query. Zero keeps the
	// server default.
	StatementTimeout time.Duration
}

func (config ListingDbConfig) ConnectionString() string {
	if config.Url != "" {
		return config.Url
	}

	sslMode := config.SslMode
	if sslMode == "" {
		sslMode = defaultListingSslMode
	}
	params := []string{
		"host=" + quoteConnValue(config.Host),
		"dbname=" + quoteConnValue(config.Database),
		"user=" + quoteConnValue(config.User),
		"password=" + quoteConnValue(config.Password),
		"sslmode=" + sslMode,
	}
	if !config.Socket && config.Port != "" {
		params = append(params, "port="+config.Port)
	}
	if config.ApplicationName != "" {
		params = append(params, "application_name="+quoteConnValue(config.ApplicationName))
	}
	if config.StatementTimeout > 0 {
		params = append(params, "options="+quoteConnValue(
			fmt.Sprintf("-c statement_timeout=%d", config.StatementTimeout.Milliseconds())))
	}
	return strings.Join(params, " ")
}

var connValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteConnValue quotes keyword/value connection parameters holding spaces, quotes or
// nothing at all.
func quoteConnValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	return "'" + connValueEscaper.Replace(value) + "'"
}
