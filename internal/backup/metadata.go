package backup

import (
	"time"

	"github.com/aelpxy/atlassnap/pkg/models"
)

type Entry struct {
	Key        string                     `json:"key"`
	ImportedAt time.Time                  `json:"imported_at"`
	Source     string                     `json:"source,omitempty"`
	Snapshot   models.CloudBackupSnapshot `json:"snapshot"`
}

type Filter struct {
	ReplicaSetName string
	Status         models.SnapshotStatus
	Type           models.ClusterType
}

func (f Filter) matches(s *models.CloudBackupSnapshot) bool {
	if f.ReplicaSetName != "" && (s.ReplicaSetName == nil || *s.ReplicaSetName != f.ReplicaSetName) {
		return false
	}
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Type != "" && s.Type != f.Type {
		return false
	}
	return true
}
