package config

import "time"

const defaultPort = 8080

// MiB is one mebibyte.
const MiB = 1 << 20

var defaultUpload = Upload{
	MaxFileSize: 15 * MiB,
}

var defaultHTTP = HTTP{
	WriteTimeout: 60 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       1,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

const defaultKafkaPhotoTopic = "shipment.photo.attached"

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultUpload returns the default upload settings.
func DefaultUpload() Upload {
	return defaultUpload
}

// DefaultHTTP returns the default HTTP server settings.
func DefaultHTTP() HTTP {
	return defaultHTTP
}

// DefaultRateLimit returns the default upload rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() PprofConfig {
	return defaultPprof
}
