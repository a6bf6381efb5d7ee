package constants

const (
	// snapshot ids from the API are 24 hex characters
	IDDisplayLength = 24

	ClusterNameWidth = 28
	DetailLabelWidth = 18

	MaxPayloadBytes = 64 << 20

	CatalogFilePerm = 0644
	CatalogDirPerm  = 0755
)
