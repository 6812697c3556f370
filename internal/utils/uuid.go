package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace ids. Time-ordered UUIDv7 values
// are preferred so ids sort by arrival in the access log.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
