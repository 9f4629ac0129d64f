// Package async provides a minimal Future type for running independent
// fetches concurrently and joining their results.
package async
