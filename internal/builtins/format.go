package builtins

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pesci-lang/pesci/internal/value"
)

// formatSpec implements the narrow slice of Python's Format
// Specification Mini-Language the format() built-in needs:
// [width][.precision][type], type one of f/d/x/o/b/%/s (empty type
// falls back to str()). Anything fancier (fill/align/sign/grouping) is
// outside the accepted subset's exercised surface.
func formatSpec(v value.Value, spec string) (string, error) {
	if spec == "" {
		return v.String(), nil
	}

	width := 0
	precision := -1
	verb := byte(0)

	i := 0
	widthStart := i
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	if i > widthStart {
		w, err := strconv.Atoi(spec[widthStart:i])
		if err != nil {
			return "", fmt.Errorf("invalid format spec %q", spec)
		}
		width = w
	}
	if i < len(spec) && spec[i] == '.' {
		i++
		precStart := i
		for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
			i++
		}
		p, err := strconv.Atoi(spec[precStart:i])
		if err != nil {
			return "", fmt.Errorf("invalid format spec %q", spec)
		}
		precision = p
	}
	if i < len(spec) {
		verb = spec[i]
		i++
	}
	if i != len(spec) {
		return "", fmt.Errorf("invalid format spec %q", spec)
	}

	var out string
	switch verb {
	case 0, 's':
		out = v.String()
	case 'f':
		f, ok := toFloat(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(f, 'f', precision, 64)
	case 'd':
		iv, ok := toInt(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		out = iv.String()
	case 'x':
		iv, ok := toInt(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		out = iv.Text(16)
	case 'o':
		iv, ok := toInt(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		out = iv.Text(8)
	case 'b':
		iv, ok := toInt(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		out = iv.Text(2)
	case '%':
		f, ok := toFloat(v)
		if !ok {
			return "", fmt.Errorf("unsupported format for %s", v.Type())
		}
		if precision < 0 {
			precision = 6
		}
		out = strconv.FormatFloat(f*100, 'f', precision, 64) + "%"
	default:
		return "", fmt.Errorf("unknown format code %q", string(verb))
	}

	if width > len(out) {
		pad := strings.Repeat(" ", width-len(out))
		if verb == 'd' || verb == 'f' || verb == 'x' || verb == 'o' || verb == 'b' || verb == '%' {
			out = pad + out
		} else {
			out = out + pad
		}
	}
	return out, nil
}
