// Package domain defines the validated value types, the immutable Patient entity
// and the filtering predicates used by casetrack. It performs no I/O.
package domain
