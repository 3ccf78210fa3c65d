package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		wantOK  bool
		wantID  string
	}{
		{"campaign create", CampaignCreate, "/campaigns/42/create", true, "42"},
		{"trailing slash", CampaignCreate, "/campaigns/42/create/", true, "42"},
		{"non numeric id still captured", CampaignCreate, "/campaigns/abc/create", true, "abc"},
		{"wrong literal", CampaignCreate, "/campaign/42/create", false, ""},
		{"too short", CampaignCreate, "/campaigns/42", false, ""},
		{"too long", CampaignCreate, "/campaigns/42/create/extra", false, ""},
		{"empty capture", CampaignCreate, "/campaigns//create", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := Match(tt.pattern, tt.path)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, params.Get("id"))
		})
	}
}

func TestParams_Int(t *testing.T) {
	n, ok := Params{"id": "42"}.Int("id")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = Params{"id": "4x2"}.Int("id")
	assert.False(t, ok)

	_, ok = Params{}.Int("id")
	assert.False(t, ok)

	var nilParams Params
	_, ok = nilParams.Int("id")
	assert.False(t, ok)
}
