package domain

// Professional is one entry of the read-only professional directory.
// CEAS is the organizational unit of a social worker; it may be empty, in
// which case the worker's cases group under the "Unassigned" CEAS bucket.
type Professional struct {
	ID   string
	Name string
	Role Role
	CEAS string
}
