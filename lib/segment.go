package lib

import (
	"strings"
	"unicode"
)

// Record is one output row: the anchor (user ID), four fixed fields and the flags.
type Record struct {
	UserID    string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Flags     string
}

// Number of tokens which must follow a user ID to start a record (first, last, phone, email)
const FIXED_FIELDS = 4

type scanState int

const (
	seekingAnchor scanState = iota
	capturingFlags
	done
)

func Tokenize(text string) []string {
	return strings.Fields(text)
}

// IsUserID returns true when tok is non-empty and every character is a decimal digit.
func IsUserID(tok string) bool {
	if len(tok) == 0 {
		return false
	}
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func SanitizeFlags(flags string) string {
	// Commas become semicolons so that the CSV writer does not need to quote the field
	return strings.ReplaceAll(flags, ",", ";")
}

func isAnchorAt(tokens []string, i int) bool {
	return IsUserID(tokens[i]) && i+FIXED_FIELDS < len(tokens)
}

// Segment splits tokens into records in one left-to-right scan.
// Non-digit tokens before an anchor are skipped. A digit-only token which does not have
// FIXED_FIELDS tokens after it ends the scan, unless it is met while capturing flags,
// in which case it is part of the flags.
func Segment(tokens []string) []Record {
	records := make([]Record, 0)
	n := len(tokens)
	i := 0
	state := seekingAnchor
	var rec Record
	var flagParts []string

	for state != done {
		switch state {
		case seekingAnchor:
			if i >= n {
				state = done
				continue
			}
			if !IsUserID(tokens[i]) {
				i++
				continue
			}
			if !isAnchorAt(tokens, i) {
				// Not enough tokens left for a record, dropping the rest
				state = done
				continue
			}
			rec = Record{
				UserID:    tokens[i],
				FirstName: strings.TrimSpace(tokens[i+1]),
				LastName:  strings.TrimSpace(tokens[i+2]),
				Phone:     strings.TrimSpace(tokens[i+3]),
				Email:     strings.TrimSpace(tokens[i+4]),
			}
			flagParts = flagParts[:0]
			i += 1 + FIXED_FIELDS
			state = capturingFlags
		case capturingFlags:
			if i < n && !isAnchorAt(tokens, i) {
				flagParts = append(flagParts, tokens[i])
				i++
				continue
			}
			rec.Flags = SanitizeFlags(strings.Join(flagParts, " "))
			records = append(records, rec)
			state = seekingAnchor
		}
	}
	return records
}

// Parse returns the tokens of text and the records built from them.
func Parse(text string) ([]string, []Record) {
	tokens := Tokenize(text)
	return tokens, Segment(tokens)
}
