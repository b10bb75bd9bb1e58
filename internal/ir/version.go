package ir

// Version constants for the RInChI formats this module reads and writes.
const (
	// RInChIVersion is the RInChI standard version.
	RInChIVersion = "1.00"

	// ToolkitVersion is the version of this toolkit.
	ToolkitVersion = "0.3.0"
)

// Fixed prefixes and placeholders of the RInChI and InChI text formats.
const (
	RInChIHeader      = "RInChI=" + RInChIVersion + ".1S/"
	RAuxInfoHeader    = "RAuxInfo=" + RInChIVersion + ".1/"
	InChIHeader       = "InChI=1S/"
	AuxInfoHeader     = "AuxInfo=1/"
	LongKeyHeader     = "Long-RInChIKey="
	ShortKeyHeader    = "Short-RInChIKey="
	WebKeyHeader      = "Web-RInChIKey="
	KeyVersionID      = "SA"
	GroupDelimiter    = "<>"
	ComponentDelim    = "!"
	DirectionTag      = "/d"
	NoStructureTag    = "/u"
	NoStructureInChI  = "InChI=1S//"
	NoStructureAux    = "AuxInfo=1//"
	NoStructureKey    = "MOSFIJXAXDLOML-UHFFFAOYSA-N"
	KeyBlockDelimiter = "-"
	KeyGroupDelimiter = "--"
)

// License is the license text reported by the toolkit.
const License = "Distributed under the IUPAC/InChI-Trust InChI Licence No. 1.0."
