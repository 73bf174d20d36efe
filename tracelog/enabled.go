//go:build !notracelog

package tracelog

// enabled gates every Log call. Building with the notracelog tag flips it
// so the compiler drops the logging paths entirely.
const enabled = true
