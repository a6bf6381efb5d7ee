package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumLookupsAreTotal(t *testing.T) {
	assert.Equal(t, SnapshotTypeOnDemand, ParseSnapshotType("onDemand"))
	assert.Equal(t, SnapshotTypeScheduled, ParseSnapshotType("SCHEDULED"))
	assert.Equal(t, SnapshotTypeUnknown, ParseSnapshotType("on demand"))
	assert.Equal(t, SnapshotTypeUnknown, ParseSnapshotType(""))

	assert.Equal(t, SnapshotStatusInProgress, ParseSnapshotStatus("inProgress"))
	assert.Equal(t, SnapshotStatusQueued, ParseSnapshotStatus("queued"))
	assert.Equal(t, SnapshotStatusUnknown, ParseSnapshotStatus("in_progress"))

	assert.Equal(t, ClusterTypeShardedCluster, ParseClusterType("shardedCluster"))
	assert.Equal(t, ClusterTypeReplicaSet, ParseClusterType("replicaset"))
	assert.Equal(t, ClusterTypeUnknown, ParseClusterType("standalone"))
}

func TestParseProviderNameIsCaseSensitive(t *testing.T) {
	assert.Equal(t, ProviderAWS, ParseProviderName("AWS"))
	assert.Equal(t, ProviderAzure, ParseProviderName("AZURE"))
	assert.Equal(t, ProviderGCP, ParseProviderName("GCP"))
	assert.Equal(t, ProviderTenant, ParseProviderName("TENANT"))
	assert.Equal(t, ProviderTenant, ParseProviderName("gcp"))
	assert.Equal(t, ProviderTenant, ParseProviderName(""))
}

func TestSnapshotHelpers(t *testing.T) {
	expires := time.Date(2021, 8, 28, 2, 3, 22, 0, time.UTC)
	s := &CloudBackupSnapshot{
		Type:      ClusterTypeShardedCluster,
		ExpiresAt: &expires,
		Links: []Link{
			{Href: "https://example.test/snap", Rel: "self"},
			{Href: "https://example.test/cluster", Rel: "http://cloud.mongodb.com/cluster"},
		},
	}

	assert.True(t, s.IsSharded())
	assert.False(t, s.Expired(expires.Add(-time.Second)))
	assert.True(t, s.Expired(expires))

	href, ok := s.LinkFor("http://cloud.mongodb.com/cluster")
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/cluster", href)
	_, ok = s.LinkFor("parent")
	assert.False(t, ok)

	assert.False(t, (&CloudBackupSnapshot{}).Expired(expires))
	assert.Contains(t, (&CloudBackupSnapshot{}).String(), "<no id>")
}

func TestSnapshotJSONUsesAPIKeys(t *testing.T) {
	id := "6104a8c6c1b4ef7788b5d8f0"
	size := int64(14380134400)
	s := CloudBackupSnapshot{
		ID:               &id,
		CloudProvider:    ProviderAWS,
		SnapshotType:     SnapshotTypeScheduled,
		Status:           SnapshotStatusCompleted,
		Type:             ClusterTypeReplicaSet,
		StorageSizeBytes: &size,
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "6104a8c6c1b4ef7788b5d8f0",
		"cloudProvider": "AWS",
		"snapshotType": "scheduled",
		"status": "completed",
		"type": "replicaSet",
		"storageSizeBytes": 14380134400
	}`, string(data))
}
