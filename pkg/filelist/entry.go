package filelist

// UpLabel is shown on the synthetic row that leads to the parent directory.
const UpLabel = "UpFolder"

// Symbol identifies the icon a row is rendered with.
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolDirectory
	SymbolFile
	SymbolUp
)

// Kind decides what happens when a row is clicked.
type Kind int

const (
	KindUnknown Kind = iota
	KindDirectory
	KindFile
	KindGoUp
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindGoUp:
		return "go-up"
	default:
		return "unknown"
	}
}

func (k Kind) Symbol() Symbol {
	switch k {
	case KindDirectory:
		return SymbolDirectory
	case KindFile:
		return SymbolFile
	case KindGoUp:
		return SymbolUp
	default:
		return SymbolNone
	}
}

// KindOf maps a row symbol back to the entry kind it was rendered for.
func KindOf(symbol Symbol) Kind {
	switch symbol {
	case SymbolDirectory:
		return KindDirectory
	case SymbolFile:
		return KindFile
	case SymbolUp:
		return KindGoUp
	default:
		return KindUnknown
	}
}

// Entry is a single display row produced by a refresh.
type Entry struct {
	Label string
	Kind  Kind
}
