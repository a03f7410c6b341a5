// Package cli implements the anvil-types command: listing, describing,
// creating and decoding the serializable schema types compiled into the
// binary.
package cli
