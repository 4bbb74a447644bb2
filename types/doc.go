// Package types holds the interfaces shared between the partgen root
// package and its internal packages.
//
// Keeping them here lets internal implementations (loggers, metrics
// collectors) satisfy the interfaces without importing the root package.
// The root package re-exports them as aliases for convenience.
package types
