package config

import (
	"fmt"
	"strings"
	"time"
)

type Catalog struct {
	// SeedFile replaces the embedded product fixtures when set.
	SeedFile     string `env:"CATALOG_SEED_FILE"`
	DefaultLimit int    `env:"CATALOG_DEFAULT_LIMIT" envDefault:"1000"`

	InquiryStore  InquiryStore  `env:"INQUIRY_STORE" envDefault:"MEMORY"`
	NotifyDriver  NotifyDriver  `env:"NOTIFY_DRIVER" envDefault:"LOG"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
}

type Notify struct {
	Recipient  string        `env:"NOTIFY_RECIPIENT" envDefault:"sales@example.com"`
	MaxRetries uint64        `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	RetryBase  time.Duration `env:"NOTIFY_RETRY_BASE" envDefault:"100ms"`
}

// InquiryStore selects the inquiry persistence backend.
type InquiryStore uint8

const (
	InquiryStoreMemory InquiryStore = iota
	InquiryStorePostgres
)

func (s InquiryStore) String() string {
	return []string{"MEMORY", "POSTGRES"}[s]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *InquiryStore) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "MEMORY":
		*s = InquiryStoreMemory
	case "POSTGRES":
		*s = InquiryStorePostgres
	default:
		return fmt.Errorf("unknown inquiry store: %s", text)
	}
	return nil
}

func (s InquiryStore) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// NotifyDriver selects how new inquiries are announced.
type NotifyDriver uint8

const (
	NotifyDriverLog NotifyDriver = iota
	NotifyDriverKafka
)

func (d NotifyDriver) String() string {
	return []string{"LOG", "KAFKA"}[d]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *NotifyDriver) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "LOG":
		*d = NotifyDriverLog
	case "KAFKA":
		*d = NotifyDriverKafka
	default:
		return fmt.Errorf("unknown notify driver: %s", text)
	}
	return nil
}

func (d NotifyDriver) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
