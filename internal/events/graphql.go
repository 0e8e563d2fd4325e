package events

import "time"

// GraphQLStart is emitted before resolving a GraphQL operation.
type GraphQLStart struct {
	Query         string
	OperationName string
	OperationType string
}

// GraphQLFinish is emitted after the response for an operation has been
// assembled. ErrorCount is the length of the response "errors" list.
type GraphQLFinish struct {
	Query         string
	OperationName string
	OperationType string
	ErrorCount    int
	Aborted       bool
	Duration      time.Duration
}
