// Package api declares HTTP contracts and route registration helpers.
package api

// This file is reserved for common types and utilities for the API package.
// The shared response and query helpers currently live in http.go.
