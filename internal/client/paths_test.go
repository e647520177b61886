package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis/turso/pkg/turso"
)

func TestClient_OrgPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		defaultOrg string
		override   string
		segments   []string
		want       string
		wantErr    error
	}{
		{
			name:       "uses default organization",
			defaultOrg: "acme",
			segments:   []string{"databases"},
			want:       "/v1/organizations/acme/databases",
		},
		{
			name:       "override wins over default",
			defaultOrg: "acme",
			override:   "other",
			segments:   []string{"databases"},
			want:       "/v1/organizations/other/databases",
		},
		{
			name:     "override alone is enough",
			override: "other",
			segments: []string{"groups", "prod"},
			want:     "/v1/organizations/other/groups/prod",
		},
		{
			name:    "neither fails locally",
			wantErr: turso.ErrOrganizationRequired,
		},
		{
			name:       "no segments yields the organization root",
			defaultOrg: "acme",
			want:       "/v1/organizations/acme",
		},
		{
			name:       "segments are path escaped",
			defaultOrg: "acme",
			segments:   []string{"databases", "my db/x"},
			want:       "/v1/organizations/acme/databases/my%20db%2Fx",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client := &Client{defaultOrg: testCase.defaultOrg}

			path, err := client.orgPath(testCase.override, testCase.segments...)
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				// Local resolution failures are plain sentinels, never
				// classified remote errors.
				var apiErr *turso.Error
				assert.False(t, errors.As(err, &apiErr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, path)
		})
	}
}

func TestGlobalPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/v1/locations", globalPath("locations"))
	assert.Equal(t, "/v1/auth/api-tokens", globalPath("auth", "api-tokens"))
	assert.Equal(t, "/v1/auth/api-tokens/ci%2Ftoken", globalPath("auth", "api-tokens", "ci/token"))
}
