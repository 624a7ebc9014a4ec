package api

import "time"

type Configuration struct {
	Env            string
	AppName        string
	Port           string
	AllowedOrigins []string

	RequestTimeout time.Duration
	MaxBodySize    int64
}
