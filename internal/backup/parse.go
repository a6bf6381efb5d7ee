package backup

import (
	"encoding/json"
	"math"

	"github.com/aelpxy/atlassnap/pkg/models"
	"github.com/sirupsen/logrus"
)

// Keys of a cloud backup snapshot document as the API spells them.
const (
	KeyID               = "id"
	KeyCloudProvider    = "cloudProvider"
	KeyCreatedAt        = "createdAt"
	KeyExpiresAt        = "expiresAt"
	KeyDescription      = "description"
	KeySnapshotType     = "snapshotType"
	KeyType             = "type"
	KeyStatus           = "status"
	KeyStorageSizeBytes = "storageSizeBytes"
	KeyReplicaSetName   = "replicaSetName"
	KeyLinks            = "links"
	KeyMasterKeyUUID    = "masterKeyUUID"
	KeyMembers          = "members"
	KeyMongodVersion    = "mongodVersion"
	KeySnapshotIDs      = "snapshotIds"
)

// Parser converts decoded API documents into snapshot records. A Parser only
// holds options and is safe for concurrent use.
type Parser struct {
	log     logrus.FieldLogger
	lenient bool
}

type Option func(*Parser)

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithLenientEnums keeps unrecognized snapshotType, type and status values as
// their Unknown variants instead of failing the parse.
func WithLenientEnums() Option {
	return func(p *Parser) {
		p.lenient = true
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// FromMap parses raw with the default strict parser.
func FromMap(raw map[string]any) (*models.CloudBackupSnapshot, error) {
	return defaultParser.Parse(raw)
}

// Parse builds a snapshot record from raw. Missing or unrecognized
// snapshotType, type and status values fail the whole parse unless the
// parser is lenient; every other field falls back to a default.
func (p *Parser) Parse(raw map[string]any) (*models.CloudBackupSnapshot, error) {
	snapshotType, err := p.enumField(raw, KeySnapshotType, func(s string) (string, bool) {
		t := models.ParseSnapshotType(s)
		return string(t), t != models.SnapshotTypeUnknown
	})
	if err != nil {
		return nil, err
	}

	clusterType, err := p.enumField(raw, KeyType, func(s string) (string, bool) {
		t := models.ParseClusterType(s)
		return string(t), t != models.ClusterTypeUnknown
	})
	if err != nil {
		return nil, err
	}

	status, err := p.enumField(raw, KeyStatus, func(s string) (string, bool) {
		st := models.ParseSnapshotStatus(s)
		return string(st), st != models.SnapshotStatusUnknown
	})
	if err != nil {
		return nil, err
	}

	return &models.CloudBackupSnapshot{
		ID:               p.stringField(raw, KeyID),
		CloudProvider:    p.provider(raw),
		CreatedAt:        tryDate(p.log, KeyCreatedAt, raw[KeyCreatedAt]),
		ExpiresAt:        tryDate(p.log, KeyExpiresAt, raw[KeyExpiresAt]),
		Description:      p.stringField(raw, KeyDescription),
		SnapshotType:     models.SnapshotType(snapshotType),
		Type:             models.ClusterType(clusterType),
		Status:           models.SnapshotStatus(status),
		StorageSizeBytes: p.int64Field(raw, KeyStorageSizeBytes),
		ReplicaSetName:   p.stringField(raw, KeyReplicaSetName),
		Links:            p.links(raw),
		MasterKeyUUID:    p.stringField(raw, KeyMasterKeyUUID),
		Members:          p.members(raw),
		MongodVersion:    p.stringField(raw, KeyMongodVersion),
		SnapshotIDs:      p.stringsField(raw, KeySnapshotIDs),
	}, nil
}

func (p *Parser) provider(raw map[string]any) models.ProviderName {
	s, _ := raw[KeyCloudProvider].(string)
	return models.ParseProviderName(s)
}

// enumField looks key up through lookup, which reports whether the value
// named a known member.
func (p *Parser) enumField(raw map[string]any, key string, lookup func(string) (string, bool)) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		if p.lenient {
			unknown, _ := lookup("")
			return unknown, nil
		}
		return "", &FieldError{Field: key, Err: ErrMissingField}
	}

	s, isString := v.(string)
	val, known := lookup(s)
	if isString && known {
		return val, nil
	}
	if p.lenient {
		p.log.WithFields(logrus.Fields{"field": key, "value": v}).Debug("unrecognized enum value")
		return val, nil
	}
	return "", &FieldError{Field: key, Value: v, Err: ErrInvalidEnumValue}
}

func (p *Parser) wrongType(key string, v any) {
	p.log.WithFields(logrus.Fields{"field": key, "value": v}).Debug("ignoring value of unexpected type")
}

func (p *Parser) stringField(raw map[string]any, key string) *string {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		p.wrongType(key, v)
		return nil
	}
	return &s
}

func (p *Parser) int64Field(raw map[string]any, key string) *int64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := toInt64(v)
	if !ok {
		p.wrongType(key, v)
		return nil
	}
	return &n
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n >= 1<<63 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func (p *Parser) stringsField(raw map[string]any, key string) []string {
	items, ok := p.list(raw, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			p.wrongType(key, item)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (p *Parser) links(raw map[string]any) []models.Link {
	items, ok := p.list(raw, KeyLinks)
	if !ok {
		return nil
	}
	out := make([]models.Link, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			p.wrongType(KeyLinks, item)
			continue
		}
		href, _ := m["href"].(string)
		rel, _ := m["rel"].(string)
		out = append(out, models.Link{Href: href, Rel: rel})
	}
	return out
}

func (p *Parser) members(raw map[string]any) []models.Member {
	items, ok := p.list(raw, KeyMembers)
	if !ok {
		return nil
	}
	out := make([]models.Member, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			p.wrongType(KeyMembers, item)
			continue
		}
		out = append(out, models.Member(m))
	}
	return out
}

func (p *Parser) list(raw map[string]any, key string) ([]any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		p.wrongType(key, v)
		return nil, false
	}
	return items, true
}
