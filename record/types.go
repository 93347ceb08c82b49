package record

// Format identifies the wire encoding of a measurement record stream.
type Format int

const (
	F01 Format = iota
	FB8
	FHITS
	FR8
	FDETS
	// FPTB64 is recognized by name but rejected by NewFactory: its packed
	// transposed-64 layout requires random access to the whole file and
	// can't be served by a streaming, one-byte-lookahead decoder.
	FPTB64
)

func (f Format) String() string {
	switch f {
	case F01:
		return "01"
	case FB8:
		return "B8"
	case FHITS:
		return "HITS"
	case FR8:
		return "R8"
	case FDETS:
		return "DETS"
	case FPTB64:
		return "PTB64"
	default:
		return "unknown"
	}
}

// ParseFormat converts the on-disk tag spelling into a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "01":
		return F01, true
	case "B8":
		return FB8, true
	case "HITS":
		return FHITS, true
	case "R8":
		return FR8, true
	case "DETS":
		return FDETS, true
	case "PTB64":
		return FPTB64, true
	default:
		return 0, false
	}
}

// ResultType labels which section of a DETS record a bit belongs to.
// Formats other than FDETS only ever report ResultM.
type ResultType byte

const (
	ResultM ResultType = 'M'
	ResultD ResultType = 'D'
	ResultL ResultType = 'L'
)
