package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBootstrapAdminSkippedWithoutCredentials(t *testing.T) {
	// A nil pool proves the skip happens before any database access;
	// shipping configs leave the password empty on purpose.
	err := createBootstrapAdmin(context.Background(), nil, BootstrapAdmin{Username: "admin"}, zerolog.Nop())
	assert.NoError(t, err)

	err = createBootstrapAdmin(context.Background(), nil, BootstrapAdmin{Password: "secret"}, zerolog.Nop())
	assert.NoError(t, err)
}
