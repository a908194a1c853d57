package kafka

import "time"

// Config holds Kafka connection parameters for the event producer.
type Config struct {
	Brokers  []string
	ClientID string

	// BatchTimeout bounds how long the writer waits to fill a batch.
	BatchTimeout time.Duration

	TLS bool

	SASLEnabled   bool
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string
}

const defaultBatchTimeout = 10 * time.Millisecond
