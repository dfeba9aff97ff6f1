// Package command implements the user-facing operations on the address book.
// Each command runs against a core.Manager and reports a Result; indexes refer to
// the manager's filtered list and are one-based at the edges.
package command
