// Package config loads seidr.json, the configuration file for Seidr demo
// servers. Missing files yield the default configuration; a present but
// malformed file is an error.
package config
