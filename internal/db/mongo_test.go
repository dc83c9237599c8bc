package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayConnect_MissingURI(t *testing.T) {
	g := NewGateway("", "zaiko")

	_, err := g.Connect(context.Background())
	assert.ErrorContains(t, err, "MONGODB_URI")
}

func TestGatewayClose_WithoutConnection(t *testing.T) {
	g := NewGateway("", "zaiko")
	assert.NoError(t, g.Close(context.Background()))
}
