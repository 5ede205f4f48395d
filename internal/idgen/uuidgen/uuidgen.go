package uuidgen

import (
	"context"

	"github.com/google/uuid"
)

// Generator hands out confirmation codes for committed reservations. The
// ledger itself assigns none; the transport layer decorates responses with
// these.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) ConfirmationCode(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
