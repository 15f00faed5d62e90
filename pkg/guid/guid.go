// Package guid generates the client-side request identifiers the API uses
// to deduplicate resource creation.
package guid

import "github.com/google/uuid"

// Source produces request GUIDs. Client code holds a Source so tests can
// substitute a deterministic one.
type Source func() string

// New returns a random v4 GUID in canonical string form.
func New() string {
	return uuid.NewString()
}
