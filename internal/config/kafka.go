package config

type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES,required" envSeparator:","`
	// Group is the consumer group of the notifier; producers ignore it.
	Group string `env:"KAFKA_GROUP" envDefault:"hvac-catalog-notifier"`
}
