package selectable

import "errors"

// Mode controls how many elements may be selected at once.
type Mode uint8

const (
	Single   Mode = iota // name=single
	Multiple             // name=multiple
)

var _Mode_string_to_type = map[string]Mode{
	"single":   Single,
	"multiple": Multiple,
}

var _Mode_type_to_string = map[Mode]string{
	Single:   "single",
	Multiple: "multiple",
}

var ErrInvalidMode = errors.New("invalid Mode")

func (i Mode) String() string {
	return _Mode_type_to_string[i]
}

// Set implements flag.Value.
func (i *Mode) Set(s string) error {
	if t, ok := _Mode_string_to_type[s]; ok {
		*i = t
		return nil
	}
	return ErrInvalidMode
}

func (i *Mode) Type() string {
	return i.String()
}

func StringToMode(s string) Mode {
	if t, ok := _Mode_string_to_type[s]; ok {
		return t
	}
	return 0
}

func IsMode(s string) bool {
	if _, ok := _Mode_string_to_type[s]; ok {
		return true
	}
	return false
}

func ModeList() []Mode {
	return []Mode{
		Single,
		Multiple,
	}
}
