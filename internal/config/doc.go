// Package config provides configuration loading, merging, and validation
// for the exam client and the draft server.
//
// Configuration is assembled from multiple sources. A field set by an
// earlier source is not overridden by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
