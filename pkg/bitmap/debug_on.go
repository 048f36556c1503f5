//go:build debug

package bitmap

const debug = true
