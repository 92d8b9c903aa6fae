package app

import "unicode/utf8"

const esc = 0x1b

// DecodeKeys decodes raw terminal input into key events. It understands
// CSI and SS3 arrow sequences with xterm modifier parameters, the ESC prefix
// some terminals send for option, and plain characters. A lone ESC is the
// escape key. Unrecognised sequences are dropped.
func DecodeKeys(data []byte) []KeyEvent {
	var events []KeyEvent

	for len(data) > 0 {
		b := data[0]

		if b != esc {
			if b < 0x20 {
				// Control characters: ^A..^Z
				events = append(events, KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Ctrl: true})
				data = data[1:]
				continue
			}
			r, size := utf8.DecodeRune(data)
			events = append(events, KeyEvent{Key: KeyRune, Rune: r})
			data = data[size:]
			continue
		}

		// ESC ESC [ ... : option held on terminals that prefix with ESC
		if len(data) >= 3 && data[1] == esc && (data[2] == '[' || data[2] == 'O') {
			ev, n, ok := decodeSequence(data[1:])
			if ok {
				ev.Alt = true
				events = append(events, ev)
			}
			data = data[1+n:]
			continue
		}

		if len(data) >= 2 && (data[1] == '[' || data[1] == 'O') {
			ev, n, ok := decodeSequence(data)
			if ok {
				events = append(events, ev)
			}
			data = data[n:]
			continue
		}

		events = append(events, KeyEvent{Key: KeyEscape})
		data = data[1:]
	}

	return events
}

// decodeSequence decodes one ESC [ or ESC O sequence starting at data[0].
// It returns the number of bytes consumed even when the sequence is unknown.
func decodeSequence(data []byte) (KeyEvent, int, bool) {
	// Parameters run until the final byte in 0x40..0x7e
	i := 2
	for i < len(data) && (data[i] < 0x40 || data[i] > 0x7e) {
		i++
	}
	if i >= len(data) {
		return KeyEvent{}, len(data), false
	}

	final := data[i]
	params := data[2:i]
	n := i + 1

	var ev KeyEvent
	switch final {
	case 'A':
		ev.Key = KeyUp
	case 'B':
		ev.Key = KeyDown
	case 'C':
		ev.Key = KeyRight
	case 'D':
		ev.Key = KeyLeft
	default:
		return KeyEvent{}, n, false
	}

	applyModifier(&ev, modifierParam(params))
	return ev, n, true
}

// modifierParam extracts m from "1;m"; 1 means no modifiers
func modifierParam(params []byte) int {
	for i, b := range params {
		if b != ';' {
			continue
		}
		m := 0
		for _, d := range params[i+1:] {
			if d < '0' || d > '9' {
				return 1
			}
			m = m*10 + int(d-'0')
		}
		return m
	}
	return 1
}

// applyModifier decodes the xterm modifier value: 1 + shift(1) + alt(2) +
// ctrl(4) + meta(8)
func applyModifier(ev *KeyEvent, m int) {
	if m <= 1 {
		return
	}
	bits := m - 1
	ev.Shift = bits&1 != 0
	ev.Alt = bits&2 != 0
	ev.Ctrl = bits&4 != 0
	ev.Cmd = bits&8 != 0
}
