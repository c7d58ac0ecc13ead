package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
)

// NextRevision returns the revision following prev, in "<generation>-<ulid>" form.
// An empty or unparseable prev starts at generation 1.
func NextRevision(prev string) string {
	return fmt.Sprintf("%d-%s", RevisionGeneration(prev)+1, ulid.Make().String())
}

// RevisionGeneration extracts the numeric generation of rev, or 0.
func RevisionGeneration(rev string) int {
	head, _, ok := strings.Cut(rev, "-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
