package rcgen

// Kind is the type of a generated asset.
type Kind int

const (
	KindMap Kind = iota + 1
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}
