package models

type GlobalConfig struct {
	Log     LogConfig     `toml:"log" json:"log"`
	Catalog CatalogConfig `toml:"catalog" json:"catalog"`
	Output  OutputConfig  `toml:"output" json:"output"`
	Parse   ParseConfig   `toml:"parse" json:"parse"`
}

type LogConfig struct {
	Level string `toml:"level" json:"level"`
}

type CatalogConfig struct {
	Path string `toml:"path" json:"path"` // empty means ~/.atlassnap/snapshots.json
}

type OutputConfig struct {
	Format     string `toml:"format" json:"format"` // table, json or yaml
	TimeFormat string `toml:"time_format" json:"time_format"`
}

type ParseConfig struct {
	LenientEnums bool `toml:"lenient_enums" json:"lenient_enums"`
}
