package cql

import "time"

type Config struct {
	Hosts          []string      `env:"CASSANDRA_HOSTS" envDefault:"127.0.0.1"`          // Hosts are the cluster contact points.
	Port           int           `env:"CASSANDRA_PORT" envDefault:"9042"`                // Port is the CQL native transport port.
	Keyspace       string        `env:"CASSANDRA_KEYSPACE" envDefault:"sessionstate"`    // Keyspace is the keyspace holding the session table.
	Consistency    string        `env:"CASSANDRA_CONSISTENCY" envDefault:"QUORUM"`       // Consistency is the default consistency level for all queries.
	Compression    bool          `env:"CASSANDRA_COMPRESSION" envDefault:"false"`        // Compression enables snappy frame compression on the wire.
	ConnectTimeout time.Duration `env:"CASSANDRA_CONNECT_TIMEOUT" envDefault:"10s"`      // ConnectTimeout is the timeout for establishing connections.
	QueryTimeout   time.Duration `env:"CASSANDRA_QUERY_TIMEOUT" envDefault:"5s"`         // QueryTimeout is the per-query timeout.

	RetryAttempts int           `env:"CASSANDRA_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of retry attempts to connect to the cluster.
	RetryInterval time.Duration `env:"CASSANDRA_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the interval between retry attempts.
}
