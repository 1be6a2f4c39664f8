// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It covers the HTTP server, renderer deployment policy (vendor extensions,
// location-age default), and the subscriber provisioning file.
package config
