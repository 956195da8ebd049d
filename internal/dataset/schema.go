package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	zlog "github.com/rs/zerolog/log"
)

// ValidationError marks an envelope-level schema failure. Record-level
// problems never produce one; bad rows are dropped individually.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset schema: %s", e.Reason)
}

// Validate checks an arbitrary JSON payload against the envelope shape.
// The top level must be an object whose EVENTS_MASTER field, when present,
// is an array. Rows that fail to decode are dropped with a warning so one
// malformed row cannot reject the whole batch.
func Validate(payload []byte) (*Dataset, error) {
	var env struct {
		Events []json.RawMessage `json:"EVENTS_MASTER"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	ds := &Dataset{Events: make([]RawRecord, 0, len(env.Events))}
	for i, raw := range env.Events {
		var rec RawRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			zlog.Warn().Int("index", i).Err(err).Msg("dataset: dropping undecodable record")
			continue
		}
		ds.Events = append(ds.Events, rec)
	}
	return ds, nil
}

// ContentETag returns the hex SHA-256 over the canonical JSON serialization
// of the events array. Used when the remote response carries no ETag header;
// the upstream endpoint computes its tag the same way.
func ContentETag(ds *Dataset) string {
	body, err := json.Marshal(ds.Events)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
