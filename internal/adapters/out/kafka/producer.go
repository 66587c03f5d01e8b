// Package kafka announces committed order ledger changes on a Kafka topic.
package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
)

// NewSyncProducer connects a synchronous producer that waits for all
// in-sync replicas to acknowledge each message.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return producer, nil
}
