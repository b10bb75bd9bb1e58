// Package testutil holds shared test fixtures and deterministic helpers.
package testutil

// Reference reactions. The epoxide reaction is a bromohydrin closing to an
// epoxide with sodium hydroxide; it is written products-first (/d-).
const (
	InChIEpoxide   = "InChI=1S/C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3/t3-,4?/m0/s1"
	InChIBromo     = "InChI=1S/C4H9BrO/c1-3(5)4(2)6/h3-4,6H,1-2H3/t3-,4+/m1/s1"
	InChIHydroxide = "InChI=1S/Na.H2O/h;1H2/q+1;/p-1"
	InChIMethane   = "InChI=1S/CH4/h1H4"
	InChIHydrogen  = "InChI=1S/H2/h1H"

	AuxEpoxide   = "AuxInfo=1/0/N:4,1,3,2,5/E:(1,2)(3,4)/it:im/rA:5nCCCCO/rB:N1;s2;P3;s2s3;/rC:-1.127,-.5635,0;-.4125,-.151,0;.4125,-.151,0;1.127,-.5635,0;0,.5635,0;"
	AuxBromo     = "AuxInfo=1/0/N:4,1,3,2,6,5/it:im/rA:6nCCCCOBr/rB:s1;s2;s3;N2;P3;/rC:-.825,-.7557,0;-.4125,-.0412,0;.4125,-.0412,0;.825,.6733,0;-.626,.7557,0;.825,-.7557,0;"
	AuxHydroxide = "AuxInfo=1/1/N:1;2/rA:2nNaO/rB:s1;/rC:-.4125,0,0;.4125,0,0;"

	EpoxideRInChI   = "RInChI=1.00.1S/C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3/t3-,4?/m0/s1<>C4H9BrO/c1-3(5)4(2)6/h3-4,6H,1-2H3/t3-,4+/m1/s1!Na.H2O/h;1H2/q+1;/p-1/d-"
	EpoxideRAuxInfo = "RAuxInfo=1.00.1/0/N:4,1,3,2,5/E:(1,2)(3,4)/it:im/rA:5nCCCCO/rB:N1;s2;P3;s2s3;/rC:-1.127,-.5635,0;-.4125,-.151,0;.4125,-.151,0;1.127,-.5635,0;0,.5635,0;<>0/N:4,1,3,2,6,5/it:im/rA:6nCCCCOBr/rB:s1;s2;s3;N2;P3;/rC:-.825,-.7557,0;-.4125,-.0412,0;.4125,-.0412,0;.825,.6733,0;-.626,.7557,0;.825,-.7557,0;!1/N:1;2/rA:2nNaO/rB:s1;/rC:-.4125,0,0;.4125,0,0;"

	// NoStructRInChI is the epoxide reaction with hydroxide as an agent and
	// five no-structure components.
	NoStructRInChI   = "RInChI=1.00.1S/C4H8O/c1-3-4(2)5-3/h3-4H,1-2H3/t3-,4?/m0/s1<>C4H9BrO/c1-3(5)4(2)6/h3-4,6H,1-2H3/t3-,4+/m1/s1<>Na.H2O/h;1H2/q+1;/p-1/d-/u2-1-2"
	NoStructLongKey  = "Long-RInChIKey=SA-BUHFF-PQXKWPLDPFFDJP-WUCPZUCCSA-N-MOSFIJXAXDLOML-UHFFFAOYSA-N-MOSFIJXAXDLOML-UHFFFAOYSA-N--JCYSVJNMXBWPHS-DMTCNVIQSA-N-MOSFIJXAXDLOML-UHFFFAOYSA-N--HEMHJVSKTPXQMS-UHFFFAOYSA-M-MOSFIJXAXDLOML-UHFFFAOYSA-N-MOSFIJXAXDLOML-UHFFFAOYSA-N"
	NoStructShortKey = "Short-RInChIKey=SA-BUHFF-PQXKWPLDPF-JCYSVJNMXB-HEMHJVSKTP-NIBFB-NMAHA-MUHFF-BAB"

	// MethaneRInChI is methane to hydrogen with no AuxInfo.
	MethaneRInChI = "RInChI=1.00.1S/CH4/h1H4<>H2/h1H/d+"
)
