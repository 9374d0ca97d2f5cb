// Package pkmnbindr holds module-wide metadata.
package pkmnbindr

// Version is the semantic version of the pkmnbindr module.
const Version = "0.3.0"
