// Package core contains the domain vocabulary of the lending registry:
// Books in a small library that users borrow and return.
//
// It holds the identifier types, the BookStatus enum, the domain events that
// describe every lending decision, the DecisionResult returned by the pure
// Decide functions of the feature packages, and the sentinel errors callers
// match with errors.Is.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
