package api

import "time"

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	RequestLoggingLevel string
	DefaultTimeout      time.Duration
	AllowedOrigins      []string
}
