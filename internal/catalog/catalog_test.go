package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackagesCarryKoboAmounts(t *testing.T) {
	basic, ok := Find("Basic")
	require.True(t, ok)
	require.Equal(t, int64(20_000_000), basic.AmountKobo)
	require.Equal(t, TypeFixed, basic.Type)

	business, ok := Find("business")
	require.True(t, ok)
	require.Equal(t, int64(60_000_000), business.AmountKobo)
	require.True(t, business.Popular)

	custom, ok := Find("Custom")
	require.True(t, ok)
	require.Equal(t, TypeCustom, custom.Type)
	require.Zero(t, custom.AmountKobo)

	_, ok = Find("Enterprise")
	require.False(t, ok)
}

func TestListPackages(t *testing.T) {
	h := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages", nil)
	rec := httptest.NewRecorder()
	h.ListPackages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Packages []Package `json:"packages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Packages, 3)
	require.Equal(t, "Basic", body.Packages[0].Name)
}
