package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/attr-format/attr"
)

// Colors maps attribute keys and value types to sprintf-style
// colorizers for display encoding.
type Colors struct {
	FieldColor func(string, ...any) string
	ValueColor map[attr.Type]func(string, ...any) string
	Default    func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		FieldColor: color.RGB(196, 96, 16).SprintfFunc(),
		Default:    colorDefault,
		ValueColor: map[attr.Type]func(string, ...any) string{},
	}
	colors.ValueColor[attr.IntType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.ValueColor[attr.FloatType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.ValueColor[attr.StringType] = color.GreenString
	colors.ValueColor[attr.BoolType] = color.MagentaString
	return colors
}

// NoColors returns a Colors that passes all text through unchanged.
func NoColors() *Colors {
	return &Colors{
		FieldColor: colorDefault,
		Default:    colorDefault,
		ValueColor: map[attr.Type]func(string, ...any) string{},
	}
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (c *Colors) Field(s string) string {
	return c.FieldColor("%s", s)
}

func (c *Colors) Value(t attr.Type, s string) string {
	fn, ok := c.ValueColor[t]
	if !ok {
		fn = c.Default
	}
	return fn("%s", s)
}
