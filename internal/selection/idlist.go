package selection

import (
	"strconv"
	"strings"
)

// Subscriptions and candidates are persisted as space-separated integer id
// tokens, each append leaving a trailing space ("7 12 "). Everything that
// touches the encoding goes through these helpers; nothing else in the
// repository may split the strings by hand.

// AppendID appends an id token to the list. No de-duplication: appending an
// id that is already present creates a second token.
func AppendID(list string, id int64) string {
	return list + strconv.FormatInt(id, 10) + " "
}

// RemoveID removes the first token equal to id, leaving the rest untouched.
// Removing an absent id returns the list unchanged.
func RemoveID(list string, id int64) string {
	want := strconv.FormatInt(id, 10)
	tokens := strings.Split(list, " ")
	for i, tok := range tokens {
		if tok == want {
			tokens = append(tokens[:i], tokens[i+1:]...)
			break
		}
	}
	return strings.Join(tokens, " ")
}

// ContainsID reports whether the list holds at least one token equal to id.
func ContainsID(list string, id int64) bool {
	want := strconv.FormatInt(id, 10)
	for _, tok := range strings.Split(list, " ") {
		if tok == want {
			return true
		}
	}
	return false
}

// ParseIDs returns every id in the list in order, skipping blank tokens.
// Malformed tokens are skipped as well; the encoding has no escape for them.
func ParseIDs(list string) []int64 {
	var ids []int64
	for _, tok := range strings.Split(list, " ") {
		if tok == "" {
			continue
		}
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
