package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/pandodao/money-tracker/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []core.ID
	}{
		{
			name: "envelope",
			body: `{"success":true,"data":[{"id":1,"wallet_id":2,"amount":"10.00"}]}`,
			want: []core.ID{"1"},
		},
		{
			name: "bare list",
			body: `[{"id":"3","wallet_id":1,"amount":5},{"id":4,"wallet_id":1,"amount":-2}]`,
			want: []core.ID{"3", "4"},
		},
		{
			name: "empty envelope list",
			body: `{"success":true,"data":[]}`,
			want: []core.ID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txs []core.Transaction
			require.NoError(t, decode(http.StatusOK, []byte(tt.body), &txs))

			got := make([]core.ID, 0, len(txs))
			for _, tx := range txs {
				got = append(got, tx.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBareObject(t *testing.T) {
	var w core.Wallet
	require.NoError(t, decode(http.StatusCreated, []byte(`{"id":9,"name":"Cash","balance":"12.50"}`), &w))

	assert.Equal(t, core.ID("9"), w.ID)
	assert.Equal(t, "Cash", w.Name)
	assert.Equal(t, "12.5", w.Balance.String())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"success false", http.StatusOK, `{"success":false,"message":"name taken"}`, "name taken"},
		{"non 2xx with message", http.StatusUnprocessableEntity, `{"message":"amount invalid"}`, "amount invalid"},
		{"non 2xx with error field", http.StatusBadRequest, `{"error":"bad wallet"}`, "bad wallet"},
		{"non 2xx without body", http.StatusInternalServerError, ``, ""},
		{"non 2xx html", http.StatusBadGateway, `<html>bad gateway</html>`, ""},
		{"malformed json", http.StatusOK, `{"success":true,`, "malformed response"},
		{"success without data", http.StatusOK, `{"success":true}`, "malformed response"},
		{"not json", http.StatusOK, `ok`, "malformed response"},
		{"empty", http.StatusOK, ``, "malformed response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v []core.Transaction
			err := decode(tt.status, []byte(tt.body), &v)

			var apiErr *core.APIError
			require.True(t, errors.As(err, &apiErr), "want APIError, got %v", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}
