// Package checkinvariant implements the Check Invariant query use case.
//
// Verify inspects a snapshot of the whole registry and reports every broken invariant:
// a status outside of {available, borrowed}, a borrowed book without a borrower entry,
// or a borrower entry for a book that is not borrowed.
package checkinvariant
