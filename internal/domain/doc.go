// Package domain defines the entity types exchanged with the scheduler API.
//
// This package contains concept-oriented files (instructor.go, course.go,
// session.go, location.go) with the wire-level entity, request, and filter
// types. No implementation code - just contracts. JSON tags are the wire
// contract with the server; update requests use pointer fields so that only
// supplied fields are sent.
package domain
