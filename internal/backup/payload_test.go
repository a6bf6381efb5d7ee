package backup

import (
	"os"
	"testing"

	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadShapes(t *testing.T) {
	cases := map[string]struct {
		input string
		want  int
	}{
		"object":   {`{"id": "a"}`, 1},
		"array":    {`[{"id": "a"}, {"id": "b"}]`, 2},
		"envelope": {`{"results": [{"id": "a"}, {"id": "b"}, {"id": "c"}], "totalCount": 3}`, 3},
		"empty":    {`{"results": []}`, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			docs, err := DecodePayload([]byte(tc.input))
			require.NoError(t, err)
			assert.Len(t, docs, tc.want)
		})
	}
}

func TestDecodePayloadRejectsMalformedInput(t *testing.T) {
	for name, input := range map[string]string{
		"not json":         `{"id":`,
		"scalar":           `"snapshot"`,
		"non-object entry": `[{"id": "a"}, 3]`,
		"results scalar":   `{"results": "none"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodePayload([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestParsePayloadListEnvelope(t *testing.T) {
	data, err := os.ReadFile("testdata/list_results.json")
	require.NoError(t, err)

	p, _ := newTestParser(t)
	snaps, err := ParsePayload(p, data, false)
	require.NoError(t, err)
	require.Len(t, snaps, 2)

	sharded := snaps[0]
	assert.True(t, sharded.IsSharded())
	assert.Equal(t, models.SnapshotTypeOnDemand, sharded.SnapshotType)
	assert.Equal(t, models.SnapshotStatusInProgress, sharded.Status)
	assert.Equal(t, models.ProviderTenant, sharded.CloudProvider)
	assert.Len(t, sharded.Members, 2)
	assert.Equal(t, []string{"61066fd0c1b4ef7788b60002", "61066fd0c1b4ef7788b60003"}, sharded.SnapshotIDs)
	require.NotNil(t, sharded.MasterKeyUUID)
	assert.Equal(t, "4b2e8c07-38bc-4a8f-9b6f-7d5a9c1e2f30", *sharded.MasterKeyUUID)
	require.NotNil(t, sharded.Description)
	assert.Equal(t, "before upgrade", *sharded.Description)

	assert.Equal(t, models.ProviderGCP, snaps[1].CloudProvider)
	assert.False(t, snaps[1].IsSharded())
}

func TestParsePayloadYAML(t *testing.T) {
	data, err := os.ReadFile("testdata/replica_set.yaml")
	require.NoError(t, err)

	p, _ := newTestParser(t)
	snaps, err := ParsePayload(p, data, true)
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	snap := snaps[0]
	assert.Equal(t, models.ProviderAzure, snap.CloudProvider)
	assert.Equal(t, models.SnapshotStatusFailed, snap.Status)
	require.NotNil(t, snap.StorageSizeBytes)
	assert.Equal(t, int64(2048), *snap.StorageSizeBytes)
	require.NotNil(t, snap.CreatedAt)
}

func TestParsePayloadStopsAtFirstFatalEntry(t *testing.T) {
	input := `[
		{"snapshotType": "scheduled", "type": "replicaSet", "status": "completed"},
		{"snapshotType": "scheduled", "type": "replicaSet"}
	]`

	p, _ := newTestParser(t)
	snaps, err := ParsePayload(p, []byte(input), false)
	require.Error(t, err)
	assert.Nil(t, snaps)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "entry 1")
}
