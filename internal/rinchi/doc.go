// Package rinchi is the native RInChI engine core.
//
// It reads RInChI + RAuxInfo strings and per-component InChI text into a
// Reaction, and writes a Reaction back out as a canonical RInChI, its
// RAuxInfo twin, and the Long, Short and Web RInChIKeys.
//
// Structure perception (molfile to InChI) is not done here. Components are
// always carried as ready-made InChI and AuxInfo strings.
package rinchi
