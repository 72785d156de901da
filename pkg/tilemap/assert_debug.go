//go:build debug

package tilemap

const strictAlignment = true
