// Package server runs the recipe API over HTTP and the health service over
// gRPC, binding both listeners before either starts serving.
package server
