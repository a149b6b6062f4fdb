package squircle

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVG parses SVG path data consisting of move, line, horizontal and
// vertical line, cubic Bézier and close commands, in absolute and relative
// form. It accepts everything [SVG] produces, so it can be used to inspect
// serialized outlines.
//
// Relative and shorthand commands are converted to absolute MoveTo, LineTo
// and CubicTo elements. Quadratic, smooth and arc commands are not supported.
func ParseSVG(s string) (BezPath, error) {
	data := []byte(s)
	var path BezPath
	var cur, subpathStart Point
	var cmd byte
	var args [6]float64

	i := skipCommaWhitespace(data)
	for i < len(data) {
		c := data[i]
		switch {
		case isCommand(c):
			cmd = c
			i++
		case 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z':
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unsupported command %q", c)}
		case cmd == 0:
			return nil, &SyntaxError{Offset: i, Msg: "path data must start with a command"}
		case cmd == 'Z' || cmd == 'z':
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected %q after close path", c)}
		}

		if len(path) == 0 && cmd != 'M' && cmd != 'm' {
			return nil, &SyntaxError{Offset: i, Msg: "path data must start with a move command"}
		}
		if path.needsMove() && cmd != 'M' && cmd != 'm' && cmd != 'Z' && cmd != 'z' {
			path.MoveTo(subpathStart)
		}

		n := argCount(cmd)
		for j := range n {
			i += skipCommaWhitespace(data[i:])
			v, k := strconv.ParseFloat(data[i:])
			if k == 0 {
				return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("command %q takes %d numbers", cmd, n)}
			}
			args[j] = v
			i += k
		}

		rel := Vec2{}
		if cmd >= 'a' {
			rel = Vec2(cur)
		}
		pt := func(x, y float64) Point { return Pt(x, y).Translate(rel) }

		switch cmd {
		case 'M', 'm':
			cur = pt(args[0], args[1])
			subpathStart = cur
			path.MoveTo(cur)
			// Coordinate pairs following a move are implicit lines.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			cur = pt(args[0], args[1])
			path.LineTo(cur)
		case 'H':
			cur.X = args[0]
			path.LineTo(cur)
		case 'h':
			cur.X += args[0]
			path.LineTo(cur)
		case 'V':
			cur.Y = args[0]
			path.LineTo(cur)
		case 'v':
			cur.Y += args[0]
			path.LineTo(cur)
		case 'C', 'c':
			p1 := pt(args[0], args[1])
			p2 := pt(args[2], args[3])
			cur = pt(args[4], args[5])
			path.CubicTo(p1, p2, cur)
		case 'Z', 'z':
			path.ClosePath()
			cur = subpathStart
		}
		i += skipCommaWhitespace(data[i:])
	}
	return path, nil
}

// needsMove reports whether the next drawing command has to begin a new
// subpath, which is the case directly after a ClosePath.
func (p BezPath) needsMove() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

func isCommand(c byte) bool {
	return argCount(c) >= 0
}

func argCount(c byte) int {
	switch c {
	case 'M', 'm', 'L', 'l':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'Z', 'z':
		return 0
	default:
		return -1
	}
}

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) {
		switch data[i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			i++
		default:
			return i
		}
	}
	return i
}
