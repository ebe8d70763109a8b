// Package returnbook implements the Return Book use case.
//
// Only the user who borrowed a book can return it. The pure Decide function checks
// that the book exists, that it is borrowed, and that the borrower matches.
package returnbook
