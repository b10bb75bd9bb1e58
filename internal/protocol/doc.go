// Package protocol implements the line protocol that carries a decomposed RInChI.
//
// A document is a direction line, a no-structure count line, and then one
// pair of lines per component:
//
//	D:-
//	N:0,1,0
//	R:InChI=1S/...
//	R:AuxInfo=1/...
//	P:InChI=1S/...
//	P:
//
// The role tag of the AuxInfo line is stripped but not checked. An empty
// AuxInfo is allowed.
package protocol
