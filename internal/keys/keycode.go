// Package keys defines the keystroke emulator boundary: the key codes the
// command set needs and the implementations that inject them into the host.
package keys

// KeyCode identifies a single key on the emulated keyboard.
type KeyCode uint8

const (
	KeyLeftCtrl KeyCode = iota
	KeyLeftAlt
	KeyLeftMeta
	KeyTab
	KeyEsc
	KeyHome
	KeyT
	KeyL
	KeyR
)

// linuxEventCodes maps each KeyCode to its Linux input-event code, the
// numbering key-injection tools such as ydotool speak.
var linuxEventCodes = map[KeyCode]int{
	KeyLeftCtrl: 29,
	KeyLeftAlt:  56,
	KeyLeftMeta: 125,
	KeyTab:      15,
	KeyEsc:      1,
	KeyHome:     102,
	KeyT:        20,
	KeyL:        38,
	KeyR:        19,
}

func (k KeyCode) String() string {
	switch k {
	case KeyLeftCtrl:
		return "leftctrl"
	case KeyLeftAlt:
		return "leftalt"
	case KeyLeftMeta:
		return "leftmeta"
	case KeyTab:
		return "tab"
	case KeyEsc:
		return "esc"
	case KeyHome:
		return "home"
	case KeyT:
		return "t"
	case KeyL:
		return "l"
	case KeyR:
		return "r"
	default:
		return "unknown"
	}
}

// EventCode returns the Linux input-event code for the key, or -1 if the key
// has no mapping.
func (k KeyCode) EventCode() int {
	if code, ok := linuxEventCodes[k]; ok {
		return code
	}
	return -1
}
