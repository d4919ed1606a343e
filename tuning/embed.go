package tuning

import "embed"

//go:embed tuning.yaml
var tuningFS embed.FS

func loadEmbedded() (Spec, error) {
	data, err := tuningFS.ReadFile("tuning.yaml")
	if err != nil {
		return Default(), err
	}
	return Parse(data)
}
