package endpoint

// Mode enumerates the six valid (source-family, destination-family-set)
// combinations plus the three control modes that never reach the
// forwarding engine.
type Mode int

const (
	ModeError Mode = iota
	ModeHelp
	ModeLicense
	ModeV4ToV4
	ModeV4ToV6
	ModeV4ToV4V6
	ModeV6ToV6
	ModeV6ToV4
	ModeV6ToV4V6
)

func (m Mode) String() string {
	switch m {
	case ModeHelp:
		return "help"
	case ModeLicense:
		return "license"
	case ModeV4ToV4:
		return "v4->v4"
	case ModeV4ToV6:
		return "v4->v6"
	case ModeV4ToV4V6:
		return "v4->v4+v6"
	case ModeV6ToV6:
		return "v6->v6"
	case ModeV6ToV4:
		return "v6->v4"
	case ModeV6ToV4V6:
		return "v6->v4+v6"
	default:
		return "error"
	}
}

// ProgramParameters aggregates one receive side with one or both
// transmit sides, plus the dispatch mode and the daemonise flag.
type ProgramParameters struct {
	Mode Mode

	RX4 *ReceiveParams4
	RX6 *ReceiveParams6

	TX4 *TransmitParams4
	TX6 *TransmitParams6

	Daemonise bool
}

// ModeFor derives the dispatch mode from which sides are populated.
// Callers must have already rejected the
// NoSrcAddr/MultiSrcAddrs/NoDstAddrs combinations.
func ModeFor(haveV4Src, haveV6Src, haveV4Dst, haveV6Dst bool) Mode {
	switch {
	case haveV4Src && haveV4Dst && haveV6Dst:
		return ModeV4ToV4V6
	case haveV4Src && haveV4Dst:
		return ModeV4ToV4
	case haveV4Src && haveV6Dst:
		return ModeV4ToV6
	case haveV6Src && haveV4Dst && haveV6Dst:
		return ModeV6ToV4V6
	case haveV6Src && haveV6Dst:
		return ModeV6ToV6
	case haveV6Src && haveV4Dst:
		return ModeV6ToV4
	default:
		return ModeError
	}
}
