package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/infrastructure/router"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/registry"
	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/testutil"
)

// SetupOption configures Setup.
type SetupOption struct {
	TearDown func(t *testing.T, db *sqlx.DB)
}

// Setup starts the full router against a throwaway database and returns an
// httpexpect instance bound to it.
func Setup(t *testing.T, opt SetupOption) (*httpexpect.Expect, *sqlx.DB, func()) {
	t.Helper()

	testutil.ReadConfig()

	db := testutil.NewDBClient(t)
	ctrl := registry.New(db).NewController()

	server := httptest.NewServer(router.New(ctrl, zap.NewNop()))

	expect := httpexpect.Default(t, server.URL)

	teardown := func() {
		if opt.TearDown != nil {
			opt.TearDown(t, db)
		}
		server.Close()
	}

	return expect, db, teardown
}

// NewToolCallID returns a unique tool call id for request fixtures.
func NewToolCallID() string {
	return "call-" + uuid.NewString()
}

// Envelope builds a single-call webhook request body.
func Envelope(id, function string, arguments any) map[string]any {
	return map[string]any{
		"message": map[string]any{
			"toolCalls": []map[string]any{
				{
					"id": id,
					"function": map[string]any{
						"name":      function,
						"arguments": arguments,
					},
				},
			},
		},
	}
}
