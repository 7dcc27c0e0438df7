package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingDbConfig_ConnectionString(t *testing.T) {
	t.Run("url", func(t *testing.T) {
		config := ListingDbConfig{Url: "postgres://pimcore@localhost/pimcore", Host: "ignored"}
		assert.Equal(t, "postgres://pimcore@localhost/pimcore", config.ConnectionString())
	})

	t.Run("from settings", func(t *testing.T) {
		config := ListingDbConfig{
			Host:             "localhost",
			Port:             "5432",
			Database:         "pimcore",
			User:             "pimcore",
			Password:         "it's secret",
			ApplicationName:  "grid-backend",
			StatementTimeout: 5 * time.Second,
		}
		assert.Equal(t,
			`host=localhost dbname=pimcore user=pimcore password='it\'s secret' sslmode=prefer port=5432 `+
				`application_name=grid-backend options='-c statement_timeout=5000'`,
			config.ConnectionString())
	})

	t.Run("unix socket", func(t *testing.T) {
		config := ListingDbConfig{
			Host:     "/var/run/postgresql",
			Port:     "5432",
			Socket:   true,
			Database: "pimcore",
			User:     "pimcore",
			SslMode:  "disable",
		}
		assert.Equal(t,
			"host=/var/run/postgresql dbname=pimcore user=pimcore password='' sslmode=disable",
			config.ConnectionString())
	})
}
