// Package domain declares the interfaces shared between the clikv command
// layer and its concrete adapters, so commands can be exercised against
// in-memory implementations.
package domain
