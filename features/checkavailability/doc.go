// Package checkavailability implements the Check Availability query use case.
//
// This is a read-only operation: it projects the BookState the registry hands over
// into an AvailabilityReport without changing anything. ProjectAll does the same
// for every book in the registry and orders the reports by book ID.
package checkavailability
