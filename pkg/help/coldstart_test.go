package help

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestColdstartYAML(t *testing.T) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(ColdstartYAML), &doc); err != nil {
		t.Fatalf("quickstart is not valid YAML: %v", err)
	}
	for _, key := range []string{"commands", "filters", "config_file", "exit_codes"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("quickstart missing %q", key)
		}
	}
}
