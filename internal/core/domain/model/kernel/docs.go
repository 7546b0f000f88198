// Package kernel holds the shared kernel of the restaurant domain: value objects
// and services used by more than one aggregate. Today that is the identifier
// generator used by dishes and orders alike.
package kernel
