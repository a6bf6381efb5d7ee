package models

import "strings"

type ProviderName string

const (
	ProviderAWS    ProviderName = "AWS"
	ProviderAzure  ProviderName = "AZURE"
	ProviderGCP    ProviderName = "GCP"
	ProviderTenant ProviderName = "TENANT"
)

var providerNames = map[string]ProviderName{
	"AWS":    ProviderAWS,
	"AZURE":  ProviderAzure,
	"GCP":    ProviderGCP,
	"TENANT": ProviderTenant,
}

// ParseProviderName matches the exact member name. Anything else, including
// the empty string, is reported as TENANT.
func ParseProviderName(s string) ProviderName {
	if p, ok := providerNames[s]; ok {
		return p
	}
	return ProviderTenant
}

func (p ProviderName) String() string { return string(p) }

type ClusterType string

const (
	ClusterTypeReplicaSet     ClusterType = "replicaSet"
	ClusterTypeShardedCluster ClusterType = "shardedCluster"
	ClusterTypeUnknown        ClusterType = "unknown"
)

var clusterTypeNames = map[string]ClusterType{
	"REPLICASET":     ClusterTypeReplicaSet,
	"SHARDEDCLUSTER": ClusterTypeShardedCluster,
}

func ParseClusterType(s string) ClusterType {
	if t, ok := clusterTypeNames[strings.ToUpper(s)]; ok {
		return t
	}
	return ClusterTypeUnknown
}

func (t ClusterType) String() string { return string(t) }
