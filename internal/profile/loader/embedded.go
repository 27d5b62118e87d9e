package loader

import "context"

// Embedded creates a [Loader] that returns embedded profile bytes.
//
// Use this for profiles embedded in the binary with go:embed:
//
//	//go:embed terraform.yaml
//	var terraformProfile []byte
//
//	l := loader.Embedded("terraform.yaml", terraformProfile)
func Embedded(profileURL string, data []byte) Loader {
	return Func(func(_ context.Context, _ string) (Result, error) {
		return NewResult(profileURL, data), nil
	})
}
