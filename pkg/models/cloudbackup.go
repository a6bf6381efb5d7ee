package models

import (
	"fmt"
	"strings"
	"time"
)

type SnapshotType string

const (
	SnapshotTypeOnDemand  SnapshotType = "onDemand"
	SnapshotTypeScheduled SnapshotType = "scheduled"
	SnapshotTypeUnknown   SnapshotType = "unknown"
)

var snapshotTypeNames = map[string]SnapshotType{
	"ONDEMAND":  SnapshotTypeOnDemand,
	"SCHEDULED": SnapshotTypeScheduled,
}

// ParseSnapshotType looks the value up by its uppercased name and never fails;
// misses come back as SnapshotTypeUnknown.
func ParseSnapshotType(s string) SnapshotType {
	if t, ok := snapshotTypeNames[strings.ToUpper(s)]; ok {
		return t
	}
	return SnapshotTypeUnknown
}

func (t SnapshotType) String() string { return string(t) }

type SnapshotStatus string

const (
	SnapshotStatusQueued     SnapshotStatus = "queued"
	SnapshotStatusInProgress SnapshotStatus = "inProgress"
	SnapshotStatusCompleted  SnapshotStatus = "completed"
	SnapshotStatusFailed     SnapshotStatus = "failed"
	SnapshotStatusUnknown    SnapshotStatus = "unknown"
)

var snapshotStatusNames = map[string]SnapshotStatus{
	"QUEUED":     SnapshotStatusQueued,
	"INPROGRESS": SnapshotStatusInProgress,
	"COMPLETED":  SnapshotStatusCompleted,
	"FAILED":     SnapshotStatusFailed,
}

func ParseSnapshotStatus(s string) SnapshotStatus {
	if st, ok := snapshotStatusNames[strings.ToUpper(s)]; ok {
		return st
	}
	return SnapshotStatusUnknown
}

func (s SnapshotStatus) String() string { return string(s) }

type Link struct {
	Href string `json:"href" yaml:"href"`
	Rel  string `json:"rel" yaml:"rel"`
}

// Member describes one shard or config server snapshot of a sharded cluster.
// The provider's schema for it is not interpreted here.
type Member map[string]any

// CloudBackupSnapshot is a cloud provider snapshot as reported by the
// managed database API. Every field is optional: nil pointers, nil slices and
// zero enum values mean the API did not return the attribute.
type CloudBackupSnapshot struct {
	ID               *string        `json:"id,omitempty" yaml:"id,omitempty"`
	CloudProvider    ProviderName   `json:"cloudProvider,omitempty" yaml:"cloudProvider,omitempty"`
	CreatedAt        *time.Time     `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Description      *string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExpiresAt        *time.Time     `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Links            []Link         `json:"links,omitempty" yaml:"links,omitempty"`
	MasterKeyUUID    *string        `json:"masterKeyUUID,omitempty" yaml:"masterKeyUUID,omitempty"`
	Members          []Member       `json:"members,omitempty" yaml:"members,omitempty"`
	MongodVersion    *string        `json:"mongodVersion,omitempty" yaml:"mongodVersion,omitempty"`
	ReplicaSetName   *string        `json:"replicaSetName,omitempty" yaml:"replicaSetName,omitempty"`
	SnapshotIDs      []string       `json:"snapshotIds,omitempty" yaml:"snapshotIds,omitempty"`
	SnapshotType     SnapshotType   `json:"snapshotType,omitempty" yaml:"snapshotType,omitempty"`
	Status           SnapshotStatus `json:"status,omitempty" yaml:"status,omitempty"`
	StorageSizeBytes *int64         `json:"storageSizeBytes,omitempty" yaml:"storageSizeBytes,omitempty"`
	Type             ClusterType    `json:"type,omitempty" yaml:"type,omitempty"`
}

func (s *CloudBackupSnapshot) IsSharded() bool {
	return s.Type == ClusterTypeShardedCluster
}

// LinkFor returns the href of the first link with the given relation.
func (s *CloudBackupSnapshot) LinkFor(rel string) (string, bool) {
	for _, l := range s.Links {
		if l.Rel == rel {
			return l.Href, true
		}
	}
	return "", false
}

// Expired reports whether the snapshot has an expiry at or before now.
func (s *CloudBackupSnapshot) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(now)
}

func (s *CloudBackupSnapshot) String() string {
	id := "<no id>"
	if s.ID != nil {
		id = *s.ID
	}
	created := "unknown"
	if s.CreatedAt != nil {
		created = s.CreatedAt.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s (%s %s, %s, created %s)", id, s.Type, s.SnapshotType, s.Status, created)
}
