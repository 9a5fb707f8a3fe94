// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (a field set by an earlier source is not overridden by later ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields that stay empty are filled from built-in defaults (7 day tokens,
// bcrypt cost 10, development environment, port 3000).
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
