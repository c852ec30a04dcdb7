package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcErr "github.com/oggyb/campus-connect/internal/errors"
	"github.com/oggyb/campus-connect/internal/identity"
)

var rules = identity.Rules{Domain: "institution.domain", Infix: "eg"}

func TestParseEmail_Valid(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	rn, err := identity.ParseEmail("23eg105j13@institution.domain", rules, now)
	require.NoError(t, err)
	assert.Equal(t, 23, rn.Batch)
	assert.Equal(t, "EG", rn.Branch)
	assert.Equal(t, "105", rn.Dept)
	assert.Equal(t, "J", rn.Section)
	assert.Equal(t, 13, rn.Roll)
	assert.Equal(t, 3, rn.AcademicYear)
}

func TestParseEmail_CaseInsensitive(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	rn, err := identity.ParseEmail("  25EG201A07@Institution.Domain ", rules, now)
	require.NoError(t, err)
	assert.Equal(t, 1, rn.AcademicYear)
}

func TestParseEmail_AcademicYearClamped(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	rn, err := identity.ParseEmail("18eg105j13@institution.domain", rules, now)
	require.NoError(t, err)
	assert.Equal(t, 4, rn.AcademicYear)
}

func TestParseEmail_Rejects(t *testing.T) {
	now := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"wrong domain":   "23eg105j13@gmail.com",
		"wrong infix":    "23cs105j13@institution.domain",
		"short dept":     "23eg15j13@institution.domain",
		"missing letter": "23eg10513@institution.domain",
		"roll zero":      "23eg105j00@institution.domain",
		"batch too old":  "14eg105j13@institution.domain",
		"future batch":   "27eg105j13@institution.domain",
		"empty":          "",
	}
	for name, email := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := identity.ParseEmail(email, rules, now)
			assert.ErrorIs(t, err, svcErr.ErrInvalidFormat)
		})
	}
}

func TestAdminClient_Revoke(t *testing.T) {
	var gotPath, gotKey, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := identity.NewAdminClient(srv.URL+"/", "svc-key")
	require.NoError(t, c.Revoke(context.Background(), "ext-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/admin/users/ext-1", gotPath)
	assert.Equal(t, "svc-key", gotKey)
}

func TestAdminClient_RevokeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := identity.NewAdminClient(srv.URL, "k").Revoke(context.Background(), "ext-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAdminClient_NotFoundIsRevoked(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	assert.NoError(t, identity.NewAdminClient(srv.URL, "k").Revoke(context.Background(), "ext-1"))
}
