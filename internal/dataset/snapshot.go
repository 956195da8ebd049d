package dataset

import (
	_ "embed"
	"fmt"
)

//go:embed seed/base.json
var seedJSON []byte

// Snapshot serves the dataset bundled into the binary, the last rung of the
// fallback ladder. It passes through the same schema validation as remote
// payloads so the seed file cannot drift from the envelope shape unnoticed.
type Snapshot struct{}

func (Snapshot) Local() (*Dataset, error) {
	ds, err := Validate(seedJSON)
	if err != nil {
		return nil, fmt.Errorf("dataset local inválido: %w", err)
	}
	return ds, nil
}
