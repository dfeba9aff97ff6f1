// Package core holds the in-memory address book of patients, the filtered view
// over it and the Manager that ties both to logging and metrics. Everything in
// this package is synchronous; callers serialize access.
package core
