//go:build !mobile

// Package mobile is the ebitenmobile binding entry point. The binding itself
// is only compiled with -tags mobile.
package mobile

// Dummy keeps the package buildable without the mobile tag.
func Dummy() {}
