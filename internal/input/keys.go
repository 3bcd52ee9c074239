package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyNames = map[string]int32{
	"space":        rl.KeySpace,
	"enter":        rl.KeyEnter,
	"tab":          rl.KeyTab,
	"escape":       rl.KeyEscape,
	"backspace":    rl.KeyBackspace,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
}

func init() {
	for i := int32(0); i < 26; i++ {
		keyNames[string(rune('a'+i))] = rl.KeyA + i
	}
	for i := int32(0); i < 10; i++ {
		keyNames[string(rune('0'+i))] = rl.KeyZero + i
	}
}

// ParseKey resolves a key name such as "W", "Space" or "LeftShift".
// Names are case-insensitive; underscores and dashes are ignored.
func ParseKey(name string) (int32, error) {
	n := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	if key, ok := keyNames[n]; ok {
		return key, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
