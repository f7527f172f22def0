package repository

import (
	"strings"
)

const (
	accountCollection = "account"
	orderCollection   = "order"
)

// validDocID reports whether id is a well-formed Firestore document id.
// Malformed ids are a client error, distinct from a missing document.
func validDocID(id string) bool {
	if id == "" || len(id) > 1500 {
		return false
	}
	if id == "." || id == ".." {
		return false
	}
	if strings.Contains(id, "/") {
		return false
	}
	return true
}
