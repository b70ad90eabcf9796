// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package properties

import (
	"fmt"
	"strings"
)

// Parse decodes the full contents of a property file.
//
// Records are read in order. For each record the key runs up to the first
// "=" or "<<" after the cursor, whichever comes first. A "=" record takes
// the rest of the line as its value. A "<<" record takes the rest of the
// line as a delimiter token and its value is every line up to the first
// line equal to that token.
//
// Blank lines between records are skipped. Text after the last record that
// holds no delimiter is ignored. Later records overwrite earlier ones with
// the same key.
func (c *Codec) Parse(data string) (*Set, error) {
	set := NewSet()
	pos := 0

	for {
		pos = skipBlankLines(data, pos)

		idx, heredoc := nextDelimiter(data, pos)
		if idx < 0 {
			if strings.TrimSpace(data[pos:]) != "" {
				c.logger.Debug("ignoring trailing text without a record delimiter",
					"offset", pos, "length", len(data)-pos)
			}
			return set, nil
		}

		key := data[pos:idx]
		if err := checkParsedKey(key, pos); err != nil {
			return nil, err
		}

		var (
			value string
			next  int
			err   error
		)
		if heredoc {
			value, next, err = readHeredoc(data, pos, idx, key)
			if err != nil {
				return nil, err
			}
		} else {
			value, next = readLine(data, idx+1)
		}

		if _, exists := set.Get(key); exists {
			c.logger.Debug("property redefined, keeping the later value", "key", key, "offset", pos)
		}
		set.Set(key, value)
		pos = next
	}
}

// nextDelimiter returns the index of the next "=" or "<<" at or after pos,
// and whether it is the heredoc form. It returns -1 when neither occurs.
func nextDelimiter(data string, pos int) (int, bool) {
	eq := strings.IndexByte(data[pos:], '=')
	hd := strings.Index(data[pos:], "<<")

	switch {
	case hd >= 0 && (eq < 0 || hd <= eq):
		return pos + hd, true
	case eq >= 0:
		return pos + eq, false
	default:
		return -1, false
	}
}

// skipBlankLines advances pos past any empty lines.
func skipBlankLines(data string, pos int) int {
	for pos < len(data) {
		switch {
		case data[pos] == '\n':
			pos++
		case strings.HasPrefix(data[pos:], "\r\n"):
			pos += 2
		default:
			return pos
		}
	}
	return pos
}

// checkParsedKey rejects keys that Stringify could not write back.
func checkParsedKey(key string, offset int) error {
	switch {
	case key == "":
		return &MalformedRecordError{Key: key, Offset: offset, Reason: "record has an empty key", kind: ErrInvalidKey}
	case strings.Contains(key, "\n"):
		return &MalformedRecordError{Key: key, Offset: offset, Reason: "key spans multiple lines", kind: ErrInvalidKey}
	case strings.HasSuffix(key, "<"):
		return &MalformedRecordError{Key: key, Offset: offset, Reason: `key cannot end with "<"`, kind: ErrInvalidKey}
	}
	return nil
}

// readLine returns the text from start up to the next newline and the
// offset just past that newline. Without a newline it reads to the end.
func readLine(data string, start int) (string, int) {
	end := strings.IndexByte(data[start:], '\n')
	if end < 0 {
		return data[start:], len(data)
	}
	return data[start : start+end], start + end + 1
}

// readHeredoc decodes the multi-line record whose "<<" is at idx.
func readHeredoc(data string, offset, idx int, key string) (string, int, error) {
	tokenStart := idx + len("<<")
	eol := strings.IndexByte(data[tokenStart:], '\n')
	if eol < 0 {
		return "", 0, &MalformedRecordError{Key: key, Offset: offset, Reason: "unexpected EOF after delimiter"}
	}
	token := data[tokenStart : tokenStart+eol]
	if token == "" {
		return "", 0, &MalformedRecordError{Key: key, Offset: offset, Reason: "missing delimiter token"}
	}

	bodyStart := tokenStart + eol + 1
	body := data[bodyStart:]

	// The closing line must be preceded by a value line and end in a newline.
	marker := "\n" + token + "\n"
	if end := strings.Index(body, marker); end >= 0 {
		return body[:end], bodyStart + end + len(marker), nil
	}

	return "", 0, &MalformedRecordError{
		Key:    key,
		Offset: offset,
		Reason: fmt.Sprintf("unexpected EOF, closing delimiter %q not found", token),
	}
}
