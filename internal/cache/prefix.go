package cache

import "fmt"

type Prefix string

const (
	// SentMessages maps a gateway message id to the time it was accepted.
	SentMessages Prefix = "hubtel:sent"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
