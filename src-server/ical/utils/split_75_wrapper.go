package utils

// Transform a normal writer into a writer that folds content lines longer
// than 75 octets, as iCalendar requires. Example:
//
//	var sb strings.Builder
//	writer := Split75wrapper(sb.WriteString)
//	writer("DESCRIPTION:Hello,world!")
//
// Output (assuming it folded every 12 octets):
//
//	DESCRIPTION:
//	 Hello,world!
//
// Continuation lines start with a single space. The caller is responsible
// for the trailing CRLF of the logical line.
func Split75wrapper(writer func(string) (int, error)) func(string) (int, error) {
	return func(str string) (int, error) {
		// write right away if the string is short enough
		if len(str) <= 75 {
			return writer(str)
		}

		written := 0
		first := true
		for len(str) > 0 {
			// first line holds 75 octets, the rest 74 plus the leading space
			limit := 74
			prefix := " "
			if first {
				limit = 75
				prefix = ""
			}
			end := min(limit, len(str))
			// don't split a multi-byte rune
			for end < len(str) && end > 0 && str[end]&0xC0 == 0x80 {
				end--
			}
			chunk := prefix + str[:end]
			str = str[end:]
			if len(str) > 0 {
				chunk += "\r\n"
			}
			n, err := writer(chunk)
			written += n
			if err != nil {
				return written, err
			}
			first = false
		}
		return written, nil
	}
}
