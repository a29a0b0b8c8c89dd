// Package data embeds a sample snapshot for the demo upstream.
package data

import (
	_ "embed"

	"github.com/healthwrapped/models"
)

//go:embed sample_wrapped.json
var sampleWrapped []byte

// Sample decodes the embedded example snapshot.
func Sample() (*models.WrappedData, error) {
	return models.ParseSnapshot(sampleWrapped)
}
