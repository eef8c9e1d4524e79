// Package config provides configuration loading, merging, and validation
// for the note client and the note server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults of the binary
//  2. Environment variables (a .env file in the working directory fills in
//     variables that are not set in the real environment)
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
