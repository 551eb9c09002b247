package datadog

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// getTags unpacks the tags from the config, yaml parses lists as a sequence of any.
func getTags(tags any) []string {
	if tags == nil {
		return []string{}
	}

	yamlBytes, err := yaml.Marshal(tags)
	if err != nil {
		return []string{}
	}

	var retTagStrings []string
	if err = yaml.Unmarshal(yamlBytes, &retTagStrings); err != nil {
		return []string{}
	}

	if retTagStrings == nil {
		return []string{}
	}

	return retTagStrings
}

// toDatadogTags returns key:value pairs sorted by key.
func toDatadogTags(tags map[string]string) []string {
	retTags := make([]string, 0, len(tags))
	for key, val := range tags {
		retTags = append(retTags, fmt.Sprintf("%s:%s", key, val))
	}

	slices.Sort(retTags)
	return retTags
}
