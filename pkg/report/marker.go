package report

// Marker is the first byte of a report entry. It is kept as a raw byte: a
// non-ASCII lead byte is not decoded, it simply matches no known marker.
type Marker byte

// Category is the semantic group a marker belongs to. Colors are configured
// per category.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryMonitor
	CategoryFree
	CategoryOccupied
	CategoryUrgent
	CategoryState
)

// Categories lists the colorable categories in configuration order.
var Categories = []Category{
	CategoryMonitor,
	CategoryFree,
	CategoryOccupied,
	CategoryUrgent,
	CategoryState,
}

func (c Category) String() string {
	switch c {
	case CategoryMonitor:
		return "monitor"
	case CategoryFree:
		return "free"
	case CategoryOccupied:
		return "occupied"
	case CategoryUrgent:
		return "urgent"
	case CategoryState:
		return "state"
	default:
		return "unknown"
	}
}

// Category maps a marker to its category.
//
//	m M  monitor (unfocused / focused)
//	f F  free desktop
//	o O  occupied desktop
//	u U  urgent desktop
//	L T G  layout, state and flags of the focused node
func (m Marker) Category() Category {
	switch m {
	case 'm', 'M':
		return CategoryMonitor
	case 'f', 'F':
		return CategoryFree
	case 'o', 'O':
		return CategoryOccupied
	case 'u', 'U':
		return CategoryUrgent
	case 'L', 'T', 'G':
		return CategoryState
	default:
		return CategoryUnknown
	}
}

// Focused reports whether m is the focused variant of a monitor or desktop
// marker.
func (m Marker) Focused() bool {
	switch m {
	case 'M', 'F', 'O', 'U':
		return true
	}
	return false
}

// String returns the marker byte as-is, without UTF-8 encoding it.
func (m Marker) String() string {
	return string([]byte{byte(m)})
}
