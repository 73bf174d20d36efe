//go:build notracelog

package tracelog

const enabled = false
