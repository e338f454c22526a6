package boundary

// OsmConfiguration allows to filter relations by certain tags from OSM data
type OsmConfiguration struct {
	EntityName string // e.g. 'boundary'
	Tags       []string
}

// CheckTag checks if incoming tag is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}
