// Package mover relocates single files into a destination directory without
// ever overwriting an existing entry.
//
// When the requested name is taken, the mover appends "_N" before the
// extension, counting up from 1 until a free slot is found. Moves use rename
// and fall back to a verified copy followed by removal of the source when the
// destination lives on another device.
package mover
